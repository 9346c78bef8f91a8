package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/oakmere/surveyor-rota/pkg/db"
)

// GetWeekendHistory retrieves all recorded weekend shifts
func (d *DB) GetWeekendHistory(ctx context.Context) ([]db.WeekendWorked, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT surveyor_id, date
		FROM weekend_worked
		ORDER BY surveyor_id, date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekend history: %w", err)
	}
	defer rows.Close()

	var entries []db.WeekendWorked
	for rows.Next() {
		var e db.WeekendWorked
		var date time.Time
		if err := rows.Scan(&e.SurveyorID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan weekend history entry: %w", err)
		}
		e.Date = date.Format("2006-01-02")
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekend history: %w", err)
	}

	return entries, nil
}

// InsertWeekendHistory records newly worked weekend dates
func (d *DB) InsertWeekendHistory(ctx context.Context, entries []db.WeekendWorked) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO weekend_worked (surveyor_id, date)
			VALUES ($1, $2)
			ON CONFLICT (surveyor_id, date) DO NOTHING
		`, e.SurveyorID, e.Date)
		if err != nil {
			return fmt.Errorf("failed to insert weekend history entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// PruneWeekendHistory deletes entries older than the given date
func (d *DB) PruneWeekendHistory(ctx context.Context, before string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM weekend_worked WHERE date < $1`, before)
	if err != nil {
		return fmt.Errorf("failed to prune weekend history: %w", err)
	}

	return nil
}
