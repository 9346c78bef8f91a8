package db

import "context"

// SurveyorStore defines surveyor database operations
type SurveyorStore interface {
	GetSurveyors(ctx context.Context) ([]Surveyor, error)
	UpsertSurveyor(ctx context.Context, surveyor Surveyor) error
}

// AssignmentStore defines assignment database operations. Date ranges are
// inclusive on both ends.
type AssignmentStore interface {
	GetAssignments(ctx context.Context, area, from, to string) ([]Assignment, error)
	ReplaceAssignments(ctx context.Context, area, from, to string, assignments []Assignment) error
	UpsertAssignment(ctx context.Context, assignment Assignment) error
	DeleteAssignment(ctx context.Context, area, date, surveyorID string) error
}

// DemandStore defines demand-setting database operations
type DemandStore interface {
	GetDemandSettings(ctx context.Context, area, from, to string) ([]DemandSetting, error)
	UpsertDemandSetting(ctx context.Context, setting DemandSetting) error
}

// WeekendHistoryStore defines weekend-history database operations
type WeekendHistoryStore interface {
	GetWeekendHistory(ctx context.Context) ([]WeekendWorked, error)
	InsertWeekendHistory(ctx context.Context, entries []WeekendWorked) error
	PruneWeekendHistory(ctx context.Context, before string) error
}

// Database combines all store interfaces
type Database interface {
	SurveyorStore
	AssignmentStore
	DemandStore
	WeekendHistoryStore
}
