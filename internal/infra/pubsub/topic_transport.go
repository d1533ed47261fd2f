package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// topicTransport publishes to a Google Cloud Pub/Sub topic.
type topicTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// newTopicTransport fails fast when the topic does not exist.
func newTopicTransport(ctx context.Context, projectID, topicID string) (*topicTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "look up topic %s", topic)
	}

	return &topicTransport{client: client, publisher: client.Publisher(topicID)}, nil
}

// send blocks until the server acknowledged the message.
func (t *topicTransport) send(ctx context.Context, msg *outgoingMessage) (string, error) {
	serverID, err := t.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	}).Get(ctx)
	if err != nil {
		return "", errors.Wrap(err, "publish to topic")
	}

	return serverID, nil
}

func (t *topicTransport) close() error {
	t.publisher.Stop()

	return errors.Wrap(t.client.Close(), "close pubsub client")
}

func (*topicTransport) name() string { return "google_pubsub" }
