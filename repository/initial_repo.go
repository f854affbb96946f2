package repository

import (
	"context"

	"siddeshlogistics/models"
)

// InitialRepository keeps the letterhead printed on an owner's invoices.
type InitialRepository interface {
	SaveInitial(ctx context.Context, initial *models.InitialSetup) error
	// GetInitial returns the latest setup of the owner, or nil, nil when none was saved.
	GetInitial(ctx context.Context, ownerID string) (*models.InitialSetup, error)
}
