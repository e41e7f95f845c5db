package spiget

import (
	"context"

	"github.com/matzehuels/spiget/pkg/models"
)

// Status is the status section.
type Status struct{ section }

// Get returns the API server status and catalog statistics.
func (s *Status) Get(ctx context.Context) (models.Status, error) {
	return get[models.Status](ctx, s.section, "status")
}
