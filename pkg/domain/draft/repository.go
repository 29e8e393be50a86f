package draft

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=draft_repository_mock.go --case=underscore
type Repository interface {
	Save(ctx context.Context, d *Draft) error
	Get(ctx context.Context, id uuid.UUID) (*Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AcquireDetection returns false when a detection for the draft is
	// already in flight.
	AcquireDetection(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseDetection(ctx context.Context, id uuid.UUID) error
	IsDetecting(ctx context.Context, id uuid.UUID) (bool, error)
}
