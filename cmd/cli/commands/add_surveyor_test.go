package commands

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmere/surveyor-rota/pkg/db"
)

// fakeDatabase is an in-memory db.Database for command tests
type fakeDatabase struct {
	surveyors []db.Surveyor
	upserted  []db.Surveyor
}

func (f *fakeDatabase) GetSurveyors(ctx context.Context) ([]db.Surveyor, error) {
	return f.surveyors, nil
}

func (f *fakeDatabase) UpsertSurveyor(ctx context.Context, surveyor db.Surveyor) error {
	f.upserted = append(f.upserted, surveyor)
	return nil
}

func (f *fakeDatabase) GetAssignments(ctx context.Context, area, from, to string) ([]db.Assignment, error) {
	return nil, nil
}

func (f *fakeDatabase) ReplaceAssignments(ctx context.Context, area, from, to string, assignments []db.Assignment) error {
	return nil
}

func (f *fakeDatabase) UpsertAssignment(ctx context.Context, assignment db.Assignment) error {
	return nil
}

func (f *fakeDatabase) DeleteAssignment(ctx context.Context, area, date, surveyorID string) error {
	return nil
}

func (f *fakeDatabase) GetDemandSettings(ctx context.Context, area, from, to string) ([]db.DemandSetting, error) {
	return nil, nil
}

func (f *fakeDatabase) UpsertDemandSetting(ctx context.Context, setting db.DemandSetting) error {
	return nil
}

func (f *fakeDatabase) GetWeekendHistory(ctx context.Context) ([]db.WeekendWorked, error) {
	return nil, nil
}

func (f *fakeDatabase) InsertWeekendHistory(ctx context.Context, entries []db.WeekendWorked) error {
	return nil
}

func (f *fakeDatabase) PruneWeekendHistory(ctx context.Context, before string) error {
	return nil
}

func runCommand(t *testing.T, fake *fakeDatabase, args []string) error {
	t.Helper()
	app := &AppContext{Ctx: context.Background(), Database: fake}
	cmd := AddSurveyorCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestAddSurveyorCmd_SavesRecord(t *testing.T) {
	fake := &fakeDatabase{}

	err := runCommand(t, fake, []string{
		"Alice",
		"--area", "south",
		"--shift", "night",
		"--unavailable", "2025-01-06, 2025-01-07",
	})

	require.NoError(t, err)
	require.Len(t, fake.upserted, 1)

	saved := fake.upserted[0]
	assert.NotEmpty(t, saved.ID, "an ID is generated when none is given")
	assert.Equal(t, "Alice", saved.Name)
	assert.True(t, saved.Active)
	assert.Equal(t, "SOUTH", saved.AreaPreference)
	assert.Equal(t, "NIGHT", saved.ShiftPreference)
	assert.Equal(t, []string{"2025-01-06", "2025-01-07"}, saved.NonAvailability)
}

func TestAddSurveyorCmd_UpdatesExistingID(t *testing.T) {
	fake := &fakeDatabase{}

	err := runCommand(t, fake, []string{"Bob", "--id", "s2", "--inactive"})

	require.NoError(t, err)
	require.Len(t, fake.upserted, 1)
	assert.Equal(t, "s2", fake.upserted[0].ID)
	assert.False(t, fake.upserted[0].Active)
	assert.Empty(t, fake.upserted[0].AreaPreference)
}

func TestAddSurveyorCmd_RejectsBadInput(t *testing.T) {
	fake := &fakeDatabase{}

	err := runCommand(t, fake, []string{"Alice", "--shift", "off"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shift preference")

	err = runCommand(t, fake, []string{"Alice", "--area", "east"})
	require.Error(t, err)

	err = runCommand(t, fake, []string{"Alice", "--unavailable", "06/01/2025"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")

	assert.Empty(t, fake.upserted, "nothing is saved on bad input")
}
