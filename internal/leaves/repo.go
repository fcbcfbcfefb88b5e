package leaves

import (
	"context"
	"time"
)

// Repo defines persistence operations for leave requests.
type Repo interface {
	Create(ctx context.Context, req Request) error
	GetByID(ctx context.Context, id string) (Request, error)
	// List returns requests newest first; an empty status matches all.
	List(ctx context.Context, status Status) ([]Request, error)
	// Review moves a pending request to status, returning ErrInvalidTransition
	// when it is no longer pending.
	Review(ctx context.Context, id string, status Status, reviewer string, at time.Time) error
}
