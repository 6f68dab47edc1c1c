// Package repository persists opportunity records as one YAML file per
// record under bucket directories.
//
// The store assumes a single actor: there is no locking, and two
// processes writing the same record concurrently can lose an update.
// Moves between buckets write the new copy before removing the old one,
// so an interrupted move leaves a duplicate (reported by List and
// repaired by Reconcile) rather than losing the record.
package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("opportunity not found")

// LoadFailure describes one record file that could not be loaded.
type LoadFailure struct {
	Path string
	Err  error
}

func (f LoadFailure) Error() string {
	return f.Path + ": " + f.Err.Error()
}

// LoadResult is everything List could read. Failures never hide the
// records that did load.
type LoadResult struct {
	Opportunities []*domain.Opportunity
	Failures      []LoadFailure
}

// Move is a relocation performed (or planned) by Reconcile.
type Move struct {
	ID     string
	From   domain.Bucket
	To     domain.Bucket
	Reason string
}

type OpportunityRepo interface {
	List(ctx context.Context) (*LoadResult, error)
	GetByID(ctx context.Context, id string) (*domain.Opportunity, error)
	Create(ctx context.Context, o *domain.Opportunity) error
	// Save writes o into the bucket its status requires, relocating the
	// file when needed, and updates o.Bucket.
	Save(ctx context.Context, o *domain.Opportunity) error
	Reconcile(ctx context.Context, dryRun bool) ([]Move, error)
}
