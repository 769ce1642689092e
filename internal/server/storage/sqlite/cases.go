package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/server/storage"
)

// caseRow состояние кейса в таблице cases
type caseRow struct {
	version int64
	deleted bool
}

// CreateCase stores a new case with version = expectedVersion.
// Если кейс уже существует, запись проходит по правилам UpdateCase.
func (s *Storage) CreateCase(ctx context.Context, c *models.Case, expectedVersion int64) (*models.Case, error) {
	return s.writeCase(ctx, c, expectedVersion, true)
}

// UpdateCase replaces an active case if expectedVersion >= stored version
func (s *Storage) UpdateCase(ctx context.Context, c *models.Case, expectedVersion int64) (*models.Case, error) {
	return s.writeCase(ctx, c, expectedVersion, false)
}

func (s *Storage) writeCase(ctx context.Context, c *models.Case, expectedVersion int64, create bool) (*models.Case, error) {
	var saved *models.Case

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row, err := getCaseRow(ctx, tx, c.ID)
		switch {
		case errors.Is(err, storage.ErrCaseNotFound):
			if !create {
				return err
			}
			saved = c.Clone()
			saved.Version = max(expectedVersion, 1)
			return s.insertCase(ctx, tx, saved)
		case err != nil:
			return err
		case row.deleted:
			return storage.ErrCaseNotFound
		case expectedVersion < row.version:
			return fmt.Errorf("case %s: stored %d, expected %d: %w",
				c.ID, row.version, expectedVersion, storage.ErrVersionConflict)
		}

		saved = c.Clone()
		saved.Version = max(expectedVersion, row.version+1)
		return s.replaceCase(ctx, tx, saved, false)
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// GetCase retrieves an active case by ID
func (s *Storage) GetCase(ctx context.Context, id string) (*models.Case, error) {
	query := `
		SELECT data, version, session_last_update
		FROM cases
		WHERE id = ? AND deleted = 0
	`

	c, err := scanCase(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return c, nil
}

// ListCases returns active or deleted cases of caseType ordered by ID
func (s *Storage) ListCases(ctx context.Context, caseType models.CaseType, deleted bool) ([]*models.Case, error) {
	query := `
		SELECT data, version, session_last_update
		FROM cases
		WHERE deleted = ? AND (? = '' OR case_type = ?)
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, deleted, string(caseType), string(caseType))
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cases := make([]*models.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cases: %w", err)
	}

	return cases, nil
}

// DeleteCase marks case as deleted
func (s *Storage) DeleteCase(ctx context.Context, id, sessionID string) (*models.Case, error) {
	return s.setDeleted(ctx, id, sessionID, true)
}

// RestoreCase returns a deleted case to active
func (s *Storage) RestoreCase(ctx context.Context, id, sessionID string) (*models.Case, error) {
	return s.setDeleted(ctx, id, sessionID, false)
}

func (s *Storage) setDeleted(ctx context.Context, id, sessionID string, deleted bool) (*models.Case, error) {
	var saved *models.Case

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			SELECT data, version, session_last_update
			FROM cases
			WHERE id = ? AND deleted = ?
		`
		c, err := scanCase(tx.QueryRowContext(ctx, query, id, !deleted))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrCaseNotFound
			}
			return fmt.Errorf("failed to get case: %w", err)
		}

		c.Version++
		c.SessionLastUpdate = sessionID
		saved = c
		return s.replaceCase(ctx, tx, c, deleted)
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func getCaseRow(ctx context.Context, tx *sql.Tx, id string) (caseRow, error) {
	var row caseRow
	err := tx.QueryRowContext(ctx, `SELECT version, deleted FROM cases WHERE id = ?`, id).
		Scan(&row.version, &row.deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, storage.ErrCaseNotFound
		}
		return row, fmt.Errorf("failed to get case version: %w", err)
	}
	return row, nil
}

func (s *Storage) insertCase(ctx context.Context, tx *sql.Tx, c *models.Case) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal case: %w", err)
	}

	query := `
		INSERT INTO cases (id, case_type, version, data, deleted, session_last_update, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		c.ID, string(c.Type), c.Version, string(data), c.SessionLastUpdate, s.now(),
	); err != nil {
		return fmt.Errorf("failed to insert case: %w", err)
	}
	return nil
}

func (s *Storage) replaceCase(ctx context.Context, tx *sql.Tx, c *models.Case, deleted bool) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal case: %w", err)
	}

	query := `
		UPDATE cases
		SET case_type = ?, version = ?, data = ?, deleted = ?, session_last_update = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, query,
		string(c.Type), c.Version, string(data), deleted, c.SessionLastUpdate, s.now(), c.ID,
	); err != nil {
		return fmt.Errorf("failed to update case: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.Case, error) {
	var (
		data      string
		version   int64
		sessionID string
	)
	if err := row.Scan(&data, &version, &sessionID); err != nil {
		return nil, err
	}

	c := &models.Case{}
	if err := json.Unmarshal([]byte(data), c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case: %w", err)
	}
	// Колонки имеют приоритет над JSON
	c.Version = version
	c.SessionLastUpdate = sessionID
	return c, nil
}
