package spiget

import (
	"context"
	"strings"

	"github.com/matzehuels/spiget/pkg/integrations"
)

// API exposes the Spiget endpoints as named sections.
// All sections share one client, and therefore one response memo.
type API struct {
	Authors    *Authors
	Categories *Categories
	Resources  *Resources
	Search     *Search
	Status     *Status
	Webhook    *Webhook

	client *integrations.Client
}

// New creates an API on top of client. A nil client is replaced by
// integrations.NewClient() with default settings.
func New(client *integrations.Client) *API {
	if client == nil {
		client = integrations.NewClient()
	}
	s := section{client: client}
	return &API{
		Authors:    &Authors{s},
		Categories: &Categories{s},
		Resources:  &Resources{s},
		Search:     &Search{s},
		Status:     &Status{s},
		Webhook:    &Webhook{s},
		client:     client,
	}
}

// Client returns the underlying client.
func (a *API) Client() *integrations.Client { return a.client }

type section struct {
	client *integrations.Client
}

// get fetches path and decodes the body into a T.
func get[T any](ctx context.Context, s section, path string) (T, error) {
	resp, err := s.client.Fetch(ctx, path, integrations.DefaultRequestOptions)
	if err != nil {
		var zero T
		return zero, err
	}
	return integrations.DecodeResponse[T](resp, what(path))
}

// raw fetches path without following redirects.
func raw(ctx context.Context, s section, path string) (*integrations.Response, error) {
	return s.client.Fetch(ctx, path, integrations.RequestOptions{FollowRedirects: false})
}

// what trims the query from path for error messages.
func what(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
