package postgres

import (
	"context"
	"fmt"

	"github.com/oakmere/surveyor-rota/pkg/db"
)

// GetSurveyors retrieves all surveyor records
func (d *DB) GetSurveyors(ctx context.Context) ([]db.Surveyor, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, active, area_preference, shift_preference, non_availability
		FROM surveyor
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query surveyors: %w", err)
	}
	defer rows.Close()

	var surveyors []db.Surveyor
	for rows.Next() {
		var s db.Surveyor
		var areaPref, shiftPref *string
		if err := rows.Scan(&s.ID, &s.Name, &s.Active, &areaPref, &shiftPref, &s.NonAvailability); err != nil {
			return nil, fmt.Errorf("failed to scan surveyor: %w", err)
		}
		if areaPref != nil {
			s.AreaPreference = *areaPref
		}
		if shiftPref != nil {
			s.ShiftPreference = *shiftPref
		}
		surveyors = append(surveyors, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating surveyors: %w", err)
	}

	return surveyors, nil
}

// UpsertSurveyor inserts or updates a surveyor record
func (d *DB) UpsertSurveyor(ctx context.Context, s db.Surveyor) error {
	var areaPref, shiftPref *string
	if s.AreaPreference != "" {
		areaPref = &s.AreaPreference
	}
	if s.ShiftPreference != "" {
		shiftPref = &s.ShiftPreference
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO surveyor (id, name, active, area_preference, shift_preference, non_availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			active = EXCLUDED.active,
			area_preference = EXCLUDED.area_preference,
			shift_preference = EXCLUDED.shift_preference,
			non_availability = EXCLUDED.non_availability
	`, s.ID, s.Name, s.Active, areaPref, shiftPref, s.NonAvailability)
	if err != nil {
		return fmt.Errorf("failed to upsert surveyor: %w", err)
	}

	return nil
}
