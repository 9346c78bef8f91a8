package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

func rotationFixture() []model.Surveyor {
	return []model.Surveyor{
		surveyor("s1", "Alice"),
		surveyor("s2", "Bob"),
		surveyor("s3", "Cara"),
	}
}

func TestNewRotationTracker_MatchesByName(t *testing.T) {
	active := rotationFixture()

	tracker := newRotationTracker([]string{"Cara", "Alice", "Ghost"}, active, "2025-01-06")

	require.NotNil(t, tracker)
	require.Len(t, tracker.roster, 2, "unmatched names are skipped")
	assert.Equal(t, "s3", tracker.roster[0].ID, "rotation order is preserved")
	assert.Equal(t, "s1", tracker.roster[1].ID)
}

func TestNewRotationTracker_NilWhenNobodyMatches(t *testing.T) {
	assert.Nil(t, newRotationTracker([]string{"Ghost"}, rotationFixture(), "2025-01-06"))
}

func TestRotationTracker_MemberForKeysByFortnightBlock(t *testing.T) {
	tracker := newRotationTracker([]string{"Alice", "Bob", "Cara"}, rotationFixture(), "2025-01-06")

	assert.Equal(t, "s1", tracker.memberFor("2025-01-06").ID)
	assert.Equal(t, "s1", tracker.memberFor("2025-01-19").ID, "same block throughout the fortnight")
	assert.Equal(t, "s2", tracker.memberFor("2025-01-20").ID, "next block rotates")
	assert.Equal(t, "s3", tracker.memberFor("2025-02-03").ID)
	assert.Equal(t, "s1", tracker.memberFor("2025-02-17").ID, "wraps around")
	assert.Nil(t, tracker.memberFor("2025-01-05"), "dates before the window have no member")
}

func TestRotationTracker_TryAssign(t *testing.T) {
	active := rotationFixture()
	r := newTestRun(t, Input{
		Surveyors:     active,
		Anchor:        anchor,
		Area:          model.AreaSouth,
		NightRotation: []string{"Alice", "Bob", "Cara"},
	})
	require.NotNil(t, r.rotation)

	id, ok := r.rotation.tryAssign(r, "2025-01-06")
	require.True(t, ok)
	assert.Equal(t, "s1", id)
	assert.True(t, r.assignments.HasShift("2025-01-06", "s1", model.ShiftNight))

	// Already working that date: the rotation yields
	_, ok = r.rotation.tryAssign(r, "2025-01-06")
	assert.False(t, ok)
}

func TestRotationTracker_TryAssignYieldsWhenUnavailable(t *testing.T) {
	active := rotationFixture()
	active[0].NonAvailability = map[model.DateKey]bool{"2025-01-06": true}

	r := newTestRun(t, Input{
		Surveyors:     active,
		Anchor:        anchor,
		Area:          model.AreaSouth,
		NightRotation: []string{"Alice", "Bob", "Cara"},
	})
	require.NotNil(t, r.rotation)

	_, ok := r.rotation.tryAssign(r, "2025-01-06")
	assert.False(t, ok, "an unavailable member falls through to the general search")
}

func TestRotationTracker_RecordNightShiftStint(t *testing.T) {
	tracker := newRotationTracker([]string{"Alice"}, rotationFixture(), "2025-01-06")
	tr := tracker.tracking["s1"]

	// First week including its Saturday: stint too short to close
	for _, d := range []model.DateKey{"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10", "2025-01-11"} {
		tracker.recordNightShift("s1", d)
	}
	assert.Zero(t, tr.ConsecutiveNightWeeks)
	assert.Empty(t, tr.RequiredDaysOff)

	// Midweek nights never close a stint
	tracker.recordNightShift("s1", "2025-01-15")
	assert.Zero(t, tr.ConsecutiveNightWeeks)

	// The second Saturday spans 12 days from the stint start and closes it
	tracker.recordNightShift("s1", "2025-01-18")
	assert.Equal(t, 1, tr.ConsecutiveNightWeeks)
	assert.Empty(t, tr.NightShiftsInRotation, "stint resets")
	for _, d := range []model.DateKey{"2025-01-19", "2025-01-20", "2025-01-21"} {
		assert.True(t, tr.RequiredDaysOff[d], "rest day %s", d)
	}
	assert.False(t, tr.RequiredDaysOff["2025-01-22"])

	assert.True(t, tracker.inRestWindow("s1", "2025-01-20"))
	assert.False(t, tracker.inRestWindow("s2", "2025-01-20"), "untracked surveyors never rest")
}

func TestAutoPopulate_SouthRotationCoversNights(t *testing.T) {
	result, err := AutoPopulate(Input{
		Surveyors:     rotationFixture(),
		Anchor:        anchor,
		Area:          model.AreaSouth,
		NightRotation: []string{"Bob", "Alice", "Cara"},
		Demand:        &model.Demand{Template: &model.DemandTemplate{MonFriDay: 0, SatDay: 0, Night: 1}},
		Rand:          seededRand(),
	})

	require.NoError(t, err)

	// Bob heads the rotation and takes every night in the fortnight block
	for _, date := range model.FortnightWindow(anchor) {
		if date.IsSunday() {
			continue
		}
		assert.True(t, result.Assignments.HasShift(date, "s2", model.ShiftNight),
			"rotation member missing on %s", date)
	}
}

func TestAutoPopulate_NorthIgnoresRotation(t *testing.T) {
	result, err := AutoPopulate(Input{
		Surveyors:     rotationFixture(),
		Anchor:        anchor,
		Area:          model.AreaNorth,
		NightRotation: []string{"Bob", "Alice", "Cara"},
		Demand:        &model.Demand{Template: &model.DemandTemplate{MonFriDay: 0, SatDay: 0, Night: 1}},
		Rand:          seededRand(),
	})

	require.NoError(t, err)

	// Without a rotation the general search spreads nights by score
	nights := make(map[string]int)
	for _, asgns := range result.Assignments {
		for _, a := range asgns {
			if a.Shift == model.ShiftNight {
				nights[a.SurveyorID]++
			}
		}
	}
	assert.Greater(t, len(nights), 1, "nights should be spread, got %v", nights)
}
