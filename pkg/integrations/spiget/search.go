package spiget

import (
	"context"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/models"
)

// Search is the search section.
type Search struct{ section }

// Resources finds resources whose field matches query.
// The API answers 404 when nothing matches.
func (s *Search) Resources(ctx context.Context, query string, field ResourceSearchField, opts integrations.ListOptions) ([]models.Resource, error) {
	if err := apierr.ValidateSearchQuery(query); err != nil {
		return nil, err
	}
	if err := field.Validate(); err != nil {
		return nil, err
	}
	path := integrations.Path("search", "resources", query) + opts.Query(integrations.Pair{Key: "field", Value: optional(field)})
	return get[[]models.Resource](ctx, s.section, path)
}

// Authors finds authors whose field matches query.
func (s *Search) Authors(ctx context.Context, query string, field AuthorSearchField, opts integrations.ListOptions) ([]models.Author, error) {
	return searchAuthors(ctx, s.section, query, field, opts)
}

func searchAuthors(ctx context.Context, s section, query string, field AuthorSearchField, opts integrations.ListOptions) ([]models.Author, error) {
	if err := apierr.ValidateSearchQuery(query); err != nil {
		return nil, err
	}
	if err := field.Validate(); err != nil {
		return nil, err
	}
	path := integrations.Path("search", "authors", query) + opts.Query(integrations.Pair{Key: "field", Value: optional(field)})
	return get[[]models.Author](ctx, s, path)
}
