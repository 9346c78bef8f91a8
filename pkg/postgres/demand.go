package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/oakmere/surveyor-rota/pkg/db"
)

// GetDemandSettings retrieves explicit demand settings for an area within
// an inclusive date range
func (d *DB) GetDemandSettings(ctx context.Context, area, from, to string) ([]db.DemandSetting, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT area, date, day_count, night_count
		FROM demand_setting
		WHERE area = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`, area, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query demand settings: %w", err)
	}
	defer rows.Close()

	var settings []db.DemandSetting
	for rows.Next() {
		var s db.DemandSetting
		var date time.Time
		if err := rows.Scan(&s.Area, &date, &s.Day, &s.Night); err != nil {
			return nil, fmt.Errorf("failed to scan demand setting: %w", err)
		}
		s.Date = date.Format("2006-01-02")
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating demand settings: %w", err)
	}

	return settings, nil
}

// UpsertDemandSetting inserts or updates the staffing target for one
// (area, date)
func (d *DB) UpsertDemandSetting(ctx context.Context, s db.DemandSetting) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO demand_setting (area, date, day_count, night_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (area, date) DO UPDATE SET
			day_count = EXCLUDED.day_count,
			night_count = EXCLUDED.night_count
	`, s.Area, s.Date, s.Day, s.Night)
	if err != nil {
		return fmt.Errorf("failed to upsert demand setting: %w", err)
	}

	return nil
}
