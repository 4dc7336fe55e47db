package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx webhook response into a delivery error.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: http %d: %s", ErrReceiverUnauthorized, code, body)
	case code == http.StatusNotFound, code == http.StatusGone:
		return fmt.Errorf("%w: http %d: %s", ErrReceiverNotFound, code, body)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrReceiverUnavailable, code, body)
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity, code == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: http %d: %s", ErrEventRejected, code, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}
