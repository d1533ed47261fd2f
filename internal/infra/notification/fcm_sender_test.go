package notification

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"enginex/config"
	"enginex/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticaster struct {
	calls [][]string
	err   error
}

func (f *fakeMulticaster) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls = append(f.calls, message.Tokens)
	if f.err != nil {
		return nil, f.err
	}

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range message.Tokens {
		responses[i] = &messaging.SendResponse{Success: true, MessageID: strconv.Itoa(i)}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func TestFCMSender_PushSplitsIntoMulticastChunks(t *testing.T) {
	client := &fakeMulticaster{}
	sender := &fcmSender{client: client}
	tokens := make([]string, multicastLimit+20)
	for i := range tokens {
		tokens[i] = "token-" + strconv.Itoa(i)
	}

	report, err := sender.Push(context.Background(), tokens, &service.PushMessage{Title: "Annonce approuvée"})

	require.NoError(t, err)
	require.Len(t, client.calls, 2)
	assert.Len(t, client.calls[0], multicastLimit)
	assert.Len(t, client.calls[1], 20)
	assert.Equal(t, len(tokens), report.Delivered)
	assert.Empty(t, report.StaleTokens)
}

func TestFCMSender_PushProviderDown(t *testing.T) {
	sender := &fcmSender{client: &fakeMulticaster{err: errors.New("503 from fcm")}}

	_, err := sender.Push(context.Background(), []string{"a"}, &service.PushMessage{})

	assert.ErrorContains(t, err, "503 from fcm")
}

func TestStaleTokens_SkipsSuccessfulResponses(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "1"},
		nil,
		{Success: true, MessageID: "3"},
	}

	assert.Empty(t, staleTokens(tokens, responses))
}

func TestNew_WithoutCredentialsLogsOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sender, err := New(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)

	report, err := sender.Push(context.Background(), []string{"t1", "t2"}, &service.PushMessage{Title: "Annonce approuvée"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered)
	assert.Zero(t, report.Failed)
}
