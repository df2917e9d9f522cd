package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrackhq/edutrack/models"
)

func TestExpandWeeklyTemplate(t *testing.T) {
	weekStart := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC) // a Monday, mid-afternoon

	slots := ExpandWeeklyTemplate(weekStart)

	require.Len(t, slots, 7*13)

	seen := map[string]bool{}
	for _, slot := range slots {
		key := slot.Date.Format("2006-01-02") + " " + slot.StartTime
		assert.False(t, seen[key], "duplicate slot %s", key)
		seen[key] = true

		assert.False(t, slot.IsBooked)
		assert.Equal(t, 0, slot.Date.Hour(), "time of day of weekStart must be ignored")
	}

	assert.Equal(t, "2026-03-02", slots[0].Date.Format("2006-01-02"))
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)

	last := slots[len(slots)-1]
	assert.Equal(t, "2026-03-08", last.Date.Format("2006-01-02"))
	assert.Equal(t, "21:00", last.StartTime)
	assert.Equal(t, "22:00", last.EndTime)
}

func TestAddHour(t *testing.T) {
	assert.Equal(t, "10:00", addHour("09:00"))
	assert.Equal(t, "22:00", addHour("21:00"))
	assert.Equal(t, "00:30", addHour("23:30"))
}

func TestGroupSlotsByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	slots := []models.AvailableDate{
		{Date: day1, StartTime: "09:00", EndTime: "10:00"},
		{Date: day1, StartTime: "10:00", EndTime: "11:00"},
		{Date: day2, StartTime: "09:00", EndTime: "10:00"},
	}

	grouped := GroupSlotsByDay(slots)

	require.Len(t, grouped, 2)
	assert.Equal(t, "2026-03-02", grouped[0].Date)
	assert.Len(t, grouped[0].Slots, 2)
	assert.Equal(t, "09:00", grouped[0].Slots[0].StartTime)
	assert.Equal(t, "10:00", grouped[0].Slots[1].StartTime)
	assert.Equal(t, "2026-03-03", grouped[1].Date)
	assert.Len(t, grouped[1].Slots, 1)
}

func TestGroupSlotsByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupSlotsByDay(nil))
}

func TestTimeOfDayPattern(t *testing.T) {
	valid := []string{"00:00", "09:30", "13:05", "23:59"}
	for _, v := range valid {
		assert.True(t, timeOfDayPattern.MatchString(v), v)
	}

	invalid := []string{"24:00", "9:00", "12:60", "noon", "12:00:00", ""}
	for _, v := range invalid {
		assert.False(t, timeOfDayPattern.MatchString(v), v)
	}
}
