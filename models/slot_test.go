package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdays(days ...time.Weekday) []time.Weekday { return days }

func TestGenerateWeekdayPattern(t *testing.T) {
	// Mon-Fri, 09:00-12:00, 60 minute slots, one calendar week: 3 slots a day
	// over 5 matching days.
	pattern := RecurringPattern{
		Days:      weekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  60 * time.Minute,
		From:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), // a Monday
		To:        time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), // the Sunday after
	}

	slots, err := pattern.Generate()
	require.NoError(t, err)
	require.Len(t, slots, 15)

	for _, slot := range slots {
		start, err := time.Parse("15:04", slot.StartTime)
		require.NoError(t, err)
		end, err := time.Parse("15:04", slot.EndTime)
		require.NoError(t, err)
		assert.Equal(t, 60*time.Minute, end.Sub(start))
		assert.True(t, slot.Active)
		assert.False(t, slot.IsBooked)

		wd := slot.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}

	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "11:00", slots[2].StartTime)
	assert.Equal(t, "12:00", slots[2].EndTime)
}

func TestGenerateTruncatesUnevenWindow(t *testing.T) {
	// 09:00-10:30 with 60 minute slots: only the 09:00-10:00 interval fits.
	pattern := RecurringPattern{
		Days:      weekdays(time.Monday),
		StartTime: "09:00",
		EndTime:   "10:30",
		Duration:  60 * time.Minute,
		From:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	slots, err := pattern.Generate()
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
}

func TestGenerateRerunDuplicates(t *testing.T) {
	pattern := RecurringPattern{
		Days:      weekdays(time.Monday),
		StartTime: "09:00",
		EndTime:   "11:00",
		Duration:  60 * time.Minute,
		From:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	first, err := pattern.Generate()
	require.NoError(t, err)
	second, err := pattern.Generate()
	require.NoError(t, err)

	// Generation never consults existing rows; applying the same pattern
	// twice doubles the slot count.
	assert.Equal(t, first, second)
	assert.Len(t, append(first, second...), 2*len(first))
}

func TestGenerateRejectsBadInput(t *testing.T) {
	base := RecurringPattern{
		Days:      weekdays(time.Monday),
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  60 * time.Minute,
		From:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	}

	p := base
	p.Duration = 0
	_, err := p.Generate()
	assert.Error(t, err)

	p = base
	p.Days = nil
	_, err = p.Generate()
	assert.Error(t, err)

	p = base
	p.StartTime = "9am"
	_, err = p.Generate()
	assert.Error(t, err)

	p = base
	p.EndTime = "08:00"
	_, err = p.Generate()
	assert.Error(t, err)
}

func TestGenerateEmptyRange(t *testing.T) {
	// No Sunday falls in a Monday-Saturday span restricted to Sunday.
	pattern := RecurringPattern{
		Days:      weekdays(time.Sunday),
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  60 * time.Minute,
		From:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	slots, err := pattern.Generate()
	require.NoError(t, err)
	assert.Empty(t, slots)
}
