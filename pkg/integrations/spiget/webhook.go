package spiget

import (
	"context"
	"net/url"
	"strings"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/models"
)

// Webhook is the webhook section. Registering and deleting webhooks needs
// POST and DELETE requests, which this client does not make.
type Webhook struct{ section }

// Events returns the names of the events a webhook can subscribe to.
func (w *Webhook) Events(ctx context.Context) ([]string, error) {
	body, err := get[struct {
		Events []string `json:"events"`
	}](ctx, w.section, "webhook/events")
	if err != nil {
		return nil, err
	}
	return body.Events, nil
}

// Status returns the delivery status of webhook id. secret is the value
// handed out when the webhook was registered.
func (w *Webhook) Status(ctx context.Context, id, secret string) (models.WebhookStatus, error) {
	if strings.TrimSpace(id) == "" {
		return models.WebhookStatus{}, apierr.New(apierr.ErrCodeInvalidInput, "webhook id cannot be empty")
	}
	if secret == "" {
		return models.WebhookStatus{}, apierr.New(apierr.ErrCodeInvalidInput, "webhook secret cannot be empty")
	}
	// The secret is free-form, so it is escaped here rather than by BuildQuery.
	path := integrations.Path("webhook", "status", id) + integrations.BuildQuery(integrations.Pair{Key: "secret", Value: url.QueryEscape(secret)})
	return get[models.WebhookStatus](ctx, w.section, path)
}
