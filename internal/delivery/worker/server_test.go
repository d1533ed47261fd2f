package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enginex/config"
	"enginex/internal/delivery/worker/handler"
	mockUc "enginex/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     &config.Config{},
		Logger:     logger,
		DeliveryUC: mockUc.NewMockDeliveryUsecase(t),
	})

	return newRouter(&config.Config{}, logger, push)
}

func TestWorkerPort(t *testing.T) {
	assert.Equal(t, defaultWorkerPort, workerPort(&config.Config{}))
	assert.Equal(t, 9090, workerPort(&config.Config{Worker: &config.WorkerConfig{Port: 9090}}))
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_PushBodyLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"message":{"data":"` + strings.Repeat("A", 300<<10) + `"}}`
	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_PushRequestIDEchoed(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-7")

	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get("X-Request-Id"))
}
