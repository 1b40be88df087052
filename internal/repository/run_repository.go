package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"wellbeing-video-service/internal/models"
)

type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// SaveRun stores the summary of a finished recommendation run.
func (r *RunRepository) SaveRun(ctx context.Context, run models.RunRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recommendation_runs (id, queries, category, video_count, categories, processing_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, pq.Array(run.Queries), run.Category, run.VideoCount,
		pq.Array(run.Categories), run.ProcessingTimeMs, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]models.RunRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, queries, category, video_count, categories, processing_ms, created_at
		FROM recommendation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []models.RunRecord{}
	for rows.Next() {
		var run models.RunRecord
		if err := rows.Scan(
			&run.ID, pq.Array(&run.Queries), &run.Category, &run.VideoCount,
			pq.Array(&run.Categories), &run.ProcessingTimeMs, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
