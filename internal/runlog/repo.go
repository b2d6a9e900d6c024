// Package runlog records indexer run reports in sqlite so operators can see
// sync history without scraping job logs.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fappstore/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Record stores one sync report.
func (r *Repo) Record(ctx context.Context, report models.SyncReport) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sync_runs (id, started_at, duration_ms, total, new_apps, updated_apps, skipped, partial)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.ID,
		report.StartedAt.Unix(),
		report.Duration.Milliseconds(),
		report.Total,
		report.New,
		report.Updated,
		report.Skipped,
		boolToInt(report.Partial),
	)
	if err != nil {
		return fmt.Errorf("insert sync run: %w", err)
	}
	return nil
}

// Recent returns the latest n runs, newest first.
func (r *Repo) Recent(ctx context.Context, n int) ([]models.SyncReport, error) {
	if n <= 0 || n > 100 {
		n = 20
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, started_at, duration_ms, total, new_apps, updated_apps, skipped, partial
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query sync runs: %w", err)
	}
	defer rows.Close()

	out := make([]models.SyncReport, 0, n)
	for rows.Next() {
		var (
			report     models.SyncReport
			startedAt  int64
			durationMS int64
			partial    int
		)
		if err := rows.Scan(
			&report.ID, &startedAt, &durationMS,
			&report.Total, &report.New, &report.Updated, &report.Skipped, &partial,
		); err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		report.StartedAt = time.Unix(startedAt, 0).UTC()
		report.Duration = time.Duration(durationMS) * time.Millisecond
		report.Partial = partial != 0
		out = append(out, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
