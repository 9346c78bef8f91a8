package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/oakmere/surveyor-rota/pkg/db"
)

// GetAssignments retrieves assignment records for an area within an
// inclusive date range
func (d *DB) GetAssignments(ctx context.Context, area, from, to string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, area, date, surveyor_id, shift, break_mins, confirmed
		FROM assignment
		WHERE area = $1 AND date >= $2 AND date <= $3
		ORDER BY date, surveyor_id
	`, area, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var date time.Time
		if err := rows.Scan(&a.ID, &a.Area, &date, &a.SurveyorID, &a.Shift, &a.BreakMins, &a.Confirmed); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Date = date.Format("2006-01-02")
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// ReplaceAssignments atomically replaces the area's assignments within an
// inclusive date range. A failed run must not leave partial assignments,
// so delete and insert share one transaction.
func (d *DB) ReplaceAssignments(ctx context.Context, area, from, to string, assignments []db.Assignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM assignment WHERE area = $1 AND date >= $2 AND date <= $3
	`, area, from, to)
	if err != nil {
		return fmt.Errorf("failed to delete assignments: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, area, date, surveyor_id, shift, break_mins, confirmed)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.Area, a.Date, a.SurveyorID, a.Shift, a.BreakMins, a.Confirmed)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpsertAssignment inserts or updates a single assignment (manual edit)
func (d *DB) UpsertAssignment(ctx context.Context, a db.Assignment) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO assignment (id, area, date, surveyor_id, shift, break_mins, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (area, date, surveyor_id) DO UPDATE SET
			shift = EXCLUDED.shift,
			break_mins = EXCLUDED.break_mins,
			confirmed = EXCLUDED.confirmed
	`, a.ID, a.Area, a.Date, a.SurveyorID, a.Shift, a.BreakMins, a.Confirmed)
	if err != nil {
		return fmt.Errorf("failed to upsert assignment: %w", err)
	}

	return nil
}

// DeleteAssignment removes a surveyor's assignment on a date (the OFF edit)
func (d *DB) DeleteAssignment(ctx context.Context, area, date, surveyorID string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM assignment WHERE area = $1 AND date = $2 AND surveyor_id = $3
	`, area, date, surveyorID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}
