package pubsub

import (
	"encoding/json"

	"enginex/internal/domain/constants"

	"github.com/pkg/errors"
)

// Message attribute keys read by the worker.
const (
	AttributeEventType = constants.AttributeEventType
	AttributeRequestID = constants.AttributeRequestID
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to the worker. The local transport
// produces the same shape so the worker cannot tell the two apart.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"` // base64 JSON event
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// outgoingMessage is the provider-neutral form of a published event.
type outgoingMessage struct {
	data       []byte
	attributes map[string]string
	// logKey identifies the event in logs without leaking addresses or tokens.
	logKey string
}

func newMessage(eventType, requestID, logKey string, event any) (*outgoingMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s event", eventType)
	}

	attributes := map[string]string{AttributeEventType: eventType}
	if requestID != "" {
		attributes[AttributeRequestID] = requestID
	}

	return &outgoingMessage{data: data, attributes: attributes, logKey: logKey}, nil
}
