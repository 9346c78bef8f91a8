package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oakmere/surveyor-rota/internal/config"
	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/core/validator"
	"github.com/oakmere/surveyor-rota/pkg/db"
)

// ValidateStore defines the database operations needed for validating a
// roster
type ValidateStore interface {
	GetSurveyors(ctx context.Context) ([]db.Surveyor, error)
	GetAssignments(ctx context.Context, area, from, to string) ([]db.Assignment, error)
	GetDemandSettings(ctx context.Context, area, from, to string) ([]db.DemandSetting, error)
	GetWeekendHistory(ctx context.Context) ([]db.WeekendWorked, error)
}

// ValidateRoster loads one area's fortnight plus the sibling area's roster
// for the same window and runs the rule validator. The returned issues are
// ordered and ready for display.
func ValidateRoster(
	ctx context.Context,
	store ValidateStore,
	cfg *config.Config,
	logger *zap.Logger,
	area model.Area,
	anchor time.Time,
) ([]string, error) {
	window := model.FortnightWindow(anchor)
	windowStart, windowEnd := window[0], window[len(window)-1]

	logger.Info("Validating roster",
		zap.String("area", string(area)),
		zap.String("window_start", string(windowStart)),
		zap.String("window_end", string(windowEnd)))

	surveyorRecords, err := store.GetSurveyors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch surveyors: %w", err)
	}

	// The validator expects the active flag already applied
	var activeRecords []db.Surveyor
	for _, rec := range surveyorRecords {
		if rec.Active {
			activeRecords = append(activeRecords, rec)
		}
	}
	surveyors := surveyorsFromRecords(activeRecords)

	assignmentRecs, err := store.GetAssignments(ctx, string(area), string(windowStart), string(windowEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	otherRecs, err := store.GetAssignments(ctx, string(area.Other()), string(windowStart), string(windowEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch other-area assignments: %w", err)
	}

	settings, err := store.GetDemandSettings(ctx, string(area), string(windowStart), string(windowEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch demand settings: %w", err)
	}

	overrides, err := cfg.DemandOverridesForRange(windowStart.Time(), windowEnd.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to expand demand overrides: %w", err)
	}
	demand := buildDemand(area, settings, overrides, cfg)

	historyRecords, err := store.GetWeekendHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekend history: %w", err)
	}
	history := weekendHistoryFromRecords(historyRecords)
	history.Prune(windowStart)

	issues := validator.ValidateRoster(validator.Input{
		Surveyors:      surveyors,
		Assignments:    assignmentsFromRecords(assignmentRecs),
		OtherArea:      assignmentsFromRecords(otherRecs),
		Anchor:         anchor,
		Area:           area,
		Demand:         demand,
		WeekendHistory: history,
	})

	logger.Info("Validation complete", zap.Int("issues", len(issues)))
	return issues, nil
}
