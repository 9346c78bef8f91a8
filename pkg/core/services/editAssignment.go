package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/core/scheduler"
	"github.com/oakmere/surveyor-rota/pkg/db"
)

// EditStore defines the database operations needed for a manual assignment
// edit
type EditStore interface {
	GetAssignments(ctx context.Context, area, from, to string) ([]db.Assignment, error)
	UpsertAssignment(ctx context.Context, assignment db.Assignment) error
	DeleteAssignment(ctx context.Context, area, date, surveyorID string) error
}

// EditRequest describes one manual roster edit
type EditRequest struct {
	Area       model.Area
	Date       model.DateKey
	SurveyorID string
	Shift      model.Shift
	BreakMins  int
	Confirmed  bool
}

// EditAssignment applies a single manual edit. Setting the shift to OFF
// deletes the assignment rather than storing it; an existing working
// assignment on the date is patched in place; a new assignment passes the
// duplicate guard first. All other rules stay advisory until a validation
// pass runs.
func EditAssignment(ctx context.Context, store EditStore, logger *zap.Logger, req EditRequest) error {
	logger.Info("Editing assignment",
		zap.String("area", string(req.Area)),
		zap.String("date", string(req.Date)),
		zap.String("surveyor_id", req.SurveyorID),
		zap.String("shift", string(req.Shift)))

	if req.Shift == model.ShiftOff {
		if err := store.DeleteAssignment(ctx, string(req.Area), string(req.Date), req.SurveyorID); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		logger.Info("Assignment deleted (OFF)")
		return nil
	}
	if !req.Shift.IsWorking() {
		return fmt.Errorf("invalid shift %q", req.Shift)
	}

	records, err := store.GetAssignments(ctx, string(req.Area), string(req.Date), string(req.Date))
	if err != nil {
		return fmt.Errorf("failed to fetch assignments: %w", err)
	}
	byDate := assignmentsFromRecords(records)

	// Patch in place when the surveyor already holds this date's assignment
	for _, rec := range records {
		if rec.SurveyorID != req.SurveyorID {
			continue
		}
		rec.Shift = string(req.Shift)
		rec.BreakMins = req.BreakMins
		rec.Confirmed = req.Confirmed
		if err := store.UpsertAssignment(ctx, rec); err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}
		logger.Info("Assignment updated", zap.String("assignment_id", rec.ID))
		return nil
	}

	if ok, msg := scheduler.CanAssign(byDate, req.Date, req.SurveyorID); !ok {
		return fmt.Errorf("cannot assign: %s", msg)
	}

	record := db.Assignment{
		ID:         uuid.New().String(),
		Area:       string(req.Area),
		Date:       string(req.Date),
		SurveyorID: req.SurveyorID,
		Shift:      string(req.Shift),
		BreakMins:  req.BreakMins,
		Confirmed:  req.Confirmed,
	}
	if err := store.UpsertAssignment(ctx, record); err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	logger.Info("Assignment created", zap.String("assignment_id", record.ID))
	return nil
}
