package service

import "context"

// PushMessage is the payload shown on a device. Data travels as FCM data fields.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarizes one fan-out. StaleTokens were rejected as unregistered or malformed
// and should not be pushed to again.
type PushReport struct {
	Delivered   int
	Failed      int
	StaleTokens []string
}

// PushSender fans a message out to device tokens.
type PushSender interface {
	// Push returns an error only when the provider could not be reached; per-token failures
	// are counted in the report.
	Push(ctx context.Context, tokens []string, msg *PushMessage) (*PushReport, error)
}
