// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/utils"
	"github.com/shahparag-spring2021/webapp/models"
)

func testEvent() models.BookEvent {
	return models.BookEvent{
		Type:       models.BookCreated,
		BookID:     "book-1",
		Title:      "Computer Networks",
		Username:   "jane@example.com",
		Link:       "http://localhost:8080/books/book-1",
		OccurredAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestWebhook(url, secret string) Publisher {
	return NewWebhookPublisher(config.Adapter{
		WebhookURL:     url,
		WebhookSecret:  secret,
		RequestTimeout: time.Second,
	}, logger.Nop())
}

// ── Publish ─────────────────────────────────────────────────────────────────

func TestWebhookPublish_SignedJSON(t *testing.T) {
	const secret = "webhook-secret"

	var received models.BookEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, utils.NewHMACSigner(secret).VerifyHex(body, r.Header.Get(SignatureHeader)))
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestWebhook(srv.URL, secret).Publish(context.Background(), testEvent())
	require.NoError(t, err)
	assert.Equal(t, testEvent(), received)
}

func TestWebhookPublish_NoSecretNoSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestWebhook(srv.URL, "").Publish(context.Background(), testEvent()))
}

func TestWebhookPublish_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", r.Header.Get("X-Trace-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-123")
	require.NoError(t, newTestWebhook(srv.URL, "").Publish(ctx, testEvent()))
}

func TestWebhookPublish_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrEventRejected},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: ErrEventRejected},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrReceiverUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrReceiverUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrReceiverNotFound},
		{name: "throttled", status: http.StatusTooManyRequests, wantErr: ErrReceiverUnavailable},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrReceiverUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrReceiverUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestWebhook(srv.URL, "").Publish(context.Background(), testEvent())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebhookPublish_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestWebhook(srv.URL, "").Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestWebhookPublish_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestWebhook(url, "").Publish(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestWebhookPublish_RejectsEmptyEvent(t *testing.T) {
	err := newTestWebhook("http://127.0.0.1:1", "").Publish(context.Background(), models.BookEvent{})
	assert.ErrorIs(t, err, ErrEmptyEvent)
}
