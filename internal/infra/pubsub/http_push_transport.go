package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/enginex-events"
	httpPushTimeout   = 30 * time.Second
)

// httpPushTransport POSTs envelopes straight to the worker, standing in for a push subscription
// during development.
type httpPushTransport struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
}

func newHTTPPushTransport(endpoint string) *httpPushTransport {
	return &httpPushTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: httpPushTimeout},
		now:      time.Now,
	}
}

func (t *httpPushTransport) send(ctx context.Context, msg *outgoingMessage) (string, error) {
	var envelope PushEnvelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = t.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return "", errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.attributes[AttributeRequestID]; requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "push to %s", t.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.Errorf("worker answered %d", resp.StatusCode)
	}

	return envelope.Message.MessageID, nil
}

func (t *httpPushTransport) close() error {
	t.client.CloseIdleConnections()

	return nil
}

func (*httpPushTransport) name() string { return "http_push" }
