package storage

import (
	"context"

	"github.com/iudanet/casesync/internal/models"
)

// CaseStorage defines interface for canonical case persistence.
//
// Writes carry the version the client based its edit on (expectedVersion).
// A write is accepted when expectedVersion >= stored version; the stored
// version becomes max(expectedVersion, stored+1), so every accepted write
// is newer than anything a peer has already observed.
type CaseStorage interface {
	// CreateCase stores a new case. If the case already exists
	// the write is handled as UpdateCase.
	CreateCase(ctx context.Context, c *models.Case, expectedVersion int64) (*models.Case, error)

	// UpdateCase replaces an active case
	// Returns ErrCaseNotFound if case doesn't exist or is deleted,
	// ErrVersionConflict if stored version is newer than expectedVersion
	UpdateCase(ctx context.Context, c *models.Case, expectedVersion int64) (*models.Case, error)

	// GetCase retrieves an active case by ID
	// Returns ErrCaseNotFound if case doesn't exist or is deleted
	GetCase(ctx context.Context, id string) (*models.Case, error)

	// ListCases returns active (deleted == false) or deleted cases;
	// empty caseType means all types
	ListCases(ctx context.Context, caseType models.CaseType, deleted bool) ([]*models.Case, error)

	// DeleteCase marks case as deleted and bumps its version
	// Returns ErrCaseNotFound if case doesn't exist or is already deleted
	DeleteCase(ctx context.Context, id, sessionID string) (*models.Case, error)

	// RestoreCase returns a deleted case to active and bumps its version
	// Returns ErrCaseNotFound if there is no deleted case with this ID
	RestoreCase(ctx context.Context, id, sessionID string) (*models.Case, error)
}
