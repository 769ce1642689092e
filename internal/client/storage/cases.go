package storage

import (
	"context"

	"github.com/iudanet/casesync/internal/models"
)

// Collection имя локальной коллекции кейсов
type Collection string

const (
	// CollectionActive активные кейсы
	CollectionActive Collection = "cases"
	// CollectionDeleted удаленные кейсы
	CollectionDeleted Collection = "deleted_cases"
)

// CaseStorage defines interface for durable local copy of the cases state.
// Stored cases keep local bookkeeping (pending fields, sync status).
type CaseStorage interface {
	// PutCases stores or replaces cases in collection
	PutCases(ctx context.Context, col Collection, cases ...*models.Case) error

	// DeleteCases removes cases from collection; missing ids are ignored
	DeleteCases(ctx context.Context, col Collection, ids ...string) error

	// GetCase retrieves a case by ID
	// Returns ErrCaseNotFound if case doesn't exist
	GetCase(ctx context.Context, col Collection, id string) (*models.Case, error)

	// LoadCases returns all cases of collection
	LoadCases(ctx context.Context, col Collection) (models.CasesHash, error)

	// AddPendingDeletes queues case ids for DELETE on server
	AddPendingDeletes(ctx context.Context, ids ...string) error

	// RemovePendingDeletes removes ids from the delete queue
	RemovePendingDeletes(ctx context.Context, ids ...string) error

	// LoadPendingDeletes returns queued ids
	LoadPendingDeletes(ctx context.Context) (map[string]struct{}, error)

	// Clear removes all cases and pending deletes
	Clear(ctx context.Context) error
}
