package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/types"
)

// Archives are stored as JSONB rows in the job_archives table:
//
//	CREATE TABLE job_archives (
//	    id           TEXT PRIMARY KEY,
//	    customer_id  TEXT NOT NULL DEFAULT '',
//	    archive_date TIMESTAMPTZ NOT NULL,
//	    content      JSONB NOT NULL
//	);
//
// Rows are written once when a job is archived and never updated.

// ArchiveStore is a PostgreSQL-backed archive.Repository.
type ArchiveStore struct {
	db *DB
}

// NewArchiveStore creates an ArchiveStore over an open connection pool.
func NewArchiveStore(db *DB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

// Search returns archives matching the criteria. Coarse filters (explicit
// IDs, customer) narrow the scan in SQL; the shared in-process matcher
// applies the remaining criteria so that query semantics stay identical to
// the in-memory repository.
func (s *ArchiveStore) Search(ctx context.Context, criteria archive.SearchCriteria) ([]types.JobArchive, error) {
	rows, err := s.queryCandidates(ctx, criteria)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []types.JobArchive
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan archive row: %w", err)
		}

		var a types.JobArchive
		if err := json.Unmarshal(content, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal archive content: %w", err)
		}

		if !archive.Matches(&a, criteria) {
			continue
		}
		results = append(results, a)
		if criteria.MaxResults > 0 && len(results) >= criteria.MaxResults {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive rows: %w", err)
	}
	return results, nil
}

func (s *ArchiveStore) queryCandidates(ctx context.Context, criteria archive.SearchCriteria) (pgx.Rows, error) {
	if len(criteria.ArchiveIDs) > 0 {
		rows, err := s.db.pool.Query(ctx,
			`SELECT content FROM job_archives WHERE id = ANY($1)`,
			criteria.ArchiveIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query archives by id: %w", err)
		}
		return rows, nil
	}

	if criteria.CustomerID != "" {
		rows, err := s.db.pool.Query(ctx,
			`SELECT content FROM job_archives WHERE customer_id = $1 ORDER BY archive_date DESC`,
			criteria.CustomerID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query archives by customer: %w", err)
		}
		return rows, nil
	}

	rows, err := s.db.pool.Query(ctx,
		`SELECT content FROM job_archives ORDER BY archive_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query archives: %w", err)
	}
	return rows, nil
}

// SaveArchive stores one frozen archive. Archives are immutable; a
// conflicting ID is an error rather than an update.
func (s *ArchiveStore) SaveArchive(ctx context.Context, customerID string, a *types.JobArchive) error {
	content, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal archive %s: %w", a.ID, err)
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO job_archives (id, customer_id, archive_date, content)
		 VALUES ($1, $2, $3, $4)`,
		a.ID, customerID, a.ArchiveDate, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save archive %s: %w", a.ID, err)
	}
	return nil
}
