package repository

import (
	"context"

	"greeter/internal/model"
)

// DisasterRepository defines data access for stored disaster records.
// No business logic here, strictly persistence operations.
type DisasterRepository interface {
	// CreateBatch inserts all records in a single transaction. Either every
	// record is stored or none is.
	CreateBatch(ctx context.Context, disasters []model.Disaster) error

	// Latest returns the most recently stored record, or ErrNotFound.
	Latest(ctx context.Context) (*model.Disaster, error)
}
