package spiget

import (
	"context"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/models"
)

// Authors is the authors section.
type Authors struct{ section }

// List returns authors. Only members involved with resources are listed,
// either as resource author or as reviewer.
func (a *Authors) List(ctx context.Context, opts integrations.ListOptions) ([]models.Author, error) {
	return get[[]models.Author](ctx, a.section, "authors"+opts.Query())
}

// Details returns the author with id, including social identities.
func (a *Authors) Details(ctx context.Context, id int) (models.Author, error) {
	if err := apierr.ValidateID("author", id); err != nil {
		return models.Author{}, err
	}
	return get[models.Author](ctx, a.section, integrations.Path("authors", id))
}

// Resources returns the resources published by author id.
// List entries omit description, reviews, versions and updates.
func (a *Authors) Resources(ctx context.Context, id int, opts integrations.ListOptions) ([]models.Resource, error) {
	if err := apierr.ValidateID("author", id); err != nil {
		return nil, err
	}
	return get[[]models.Resource](ctx, a.section, integrations.Path("authors", id, "resources")+opts.Query())
}

// Reviews returns the reviews author id left on resources.
func (a *Authors) Reviews(ctx context.Context, id int, opts integrations.ListOptions) ([]models.ResourceReview, error) {
	if err := apierr.ValidateID("author", id); err != nil {
		return nil, err
	}
	return get[[]models.ResourceReview](ctx, a.section, integrations.Path("authors", id, "reviews")+opts.Query())
}

// Search finds authors matching query. It is the same request as
// Search.Authors and shares its memo entry.
func (a *Authors) Search(ctx context.Context, query string, field AuthorSearchField, opts integrations.ListOptions) ([]models.Author, error) {
	return searchAuthors(ctx, a.section, query, field, opts)
}
