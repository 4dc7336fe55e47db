package adapter

import "errors"

var (
	ErrUnknownNotifier = errors.New("unknown notifier")
	ErrEmptyEvent      = errors.New("event type and book id are required")
)

// Webhook delivery failures, classified by the receiver's response.
var (
	// ErrEventRejected means the receiver refused the payload itself.
	ErrEventRejected = errors.New("receiver rejected the event")

	// ErrReceiverUnauthorized means the signature or credentials were refused.
	ErrReceiverUnauthorized = errors.New("receiver refused credentials")

	// ErrReceiverNotFound means the configured webhook URL does not exist.
	ErrReceiverNotFound = errors.New("webhook endpoint not found")

	// ErrReceiverUnavailable covers throttling and 5xx responses.
	ErrReceiverUnavailable = errors.New("receiver unavailable")
)
