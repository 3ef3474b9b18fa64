// internal/repository/stats_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nestlist/nestlist/internal/models"
)

// Aggregates over the whole task table are awkward through the Ent
// builder, so the stats reader goes through sqlx on the same pool.
const listStatsQuery = `
SELECT
    list_id,
    COUNT(*)                                        AS total_tasks,
    COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed_tasks,
    COALESCE(SUM(CASE WHEN parent_id IS NULL THEN 1 ELSE 0 END), 0) AS top_level_tasks
FROM tasks
WHERE list_id = ?
GROUP BY list_id`

// StatsRepository serves read-only aggregate queries.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository wraps the shared *sql.DB for sqlx reads. driverName
// matches the driver the pool was opened with.
func NewStatsRepository(db *sql.DB, driverName string) *StatsRepository {
	return &StatsRepository{
		db: sqlx.NewDb(db, driverName),
	}
}

// ListStats returns the task counts of a list. A list with no tasks
// yields zeroed counts, not an error.
func (r *StatsRepository) ListStats(ctx context.Context, listID uuid.UUID) (*models.ListStats, error) {
	var stats models.ListStats
	err := r.db.GetContext(ctx, &stats, r.db.Rebind(listStatsQuery), listID.String())
	if err == sql.ErrNoRows {
		return &models.ListStats{ListID: listID.String()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query list stats: %w", err)
	}
	return &stats, nil
}
