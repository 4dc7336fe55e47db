package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/utils"
	"github.com/shahparag-spring2021/webapp/models"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body when a
// webhook secret is configured.
const SignatureHeader = "X-Signature"

type webhookPublisher struct {
	client *utils.HTTPClient
	url    string
	signer *utils.HMACSigner

	logger *logger.Logger
}

// NewWebhookPublisher constructs a [Publisher] that POSTs each event as JSON
// to cfg.WebhookURL.
func NewWebhookPublisher(cfg config.Adapter, logger *logger.Logger) Publisher {
	p := &webhookPublisher{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		url:    cfg.WebhookURL,
		logger: logger,
	}
	if cfg.WebhookSecret != "" {
		p.signer = utils.NewHMACSigner(cfg.WebhookSecret)
	}

	return p
}

func (p *webhookPublisher) Publish(ctx context.Context, event models.BookEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req := p.client.R().SetContext(ctx).SetBody(body)
	if p.signer != nil {
		req.SetHeader(SignatureHeader, p.signer.SignHex(body))
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := req.Post(p.url)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*webhookPublisher.Publish").Msg("webhook request failed")
		return fmt.Errorf("webhook request failed: %w", err)
	}

	return mapHTTPError(resp)
}

func validateEvent(event models.BookEvent) error {
	if event.Type == "" || event.BookID == "" {
		return ErrEmptyEvent
	}
	return nil
}
