// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers book notifications to external systems.
//
// The primary abstraction is [Publisher]. Three implementations ship with the
// package: a signed JSON webhook ([NewWebhookPublisher]), a Redis pub/sub
// channel ([NewRedisPublisher]) and a log-only fallback ([NewLogPublisher]).
// [NewPublisher] picks one from configuration.
//
// Delivery is best-effort: callers log a failed Publish and carry on.
package adapter

import (
	"context"

	"github.com/shahparag-spring2021/webapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/publisher_mock.go -package=mock

// Publisher sends a single book event to its destination.
type Publisher interface {
	Publish(ctx context.Context, event models.BookEvent) error
}
