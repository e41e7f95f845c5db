package spiget

import (
	"context"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/models"
)

// Categories is the categories section.
type Categories struct{ section }

// List returns resource categories.
func (c *Categories) List(ctx context.Context, opts integrations.ListOptions) ([]models.Category, error) {
	return get[[]models.Category](ctx, c.section, "categories"+opts.Query())
}

// Details returns the category with id.
func (c *Categories) Details(ctx context.Context, id int) (models.Category, error) {
	if err := apierr.ValidateID("category", id); err != nil {
		return models.Category{}, err
	}
	return get[models.Category](ctx, c.section, integrations.Path("categories", id))
}

// Resources returns the resources in category id.
func (c *Categories) Resources(ctx context.Context, id int, opts integrations.ListOptions) ([]models.Resource, error) {
	if err := apierr.ValidateID("category", id); err != nil {
		return nil, err
	}
	return get[[]models.Resource](ctx, c.section, integrations.Path("categories", id, "resources")+opts.Query())
}
