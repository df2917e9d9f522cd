package services

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edutrackhq/edutrack/apperrors"
	"github.com/edutrackhq/edutrack/models"
)

// weeklyStartHours is the fixed day×time matrix for bulk slot generation:
// one hourly slot per start time, every day of the week.
var weeklyStartHours = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00",
	"16:00", "17:00", "18:00", "19:00", "20:00", "21:00",
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ExpandWeeklyTemplate materializes the weekly matrix into slot rows for the
// seven days starting at weekStart. Time components of weekStart are ignored.
func ExpandWeeklyTemplate(weekStart time.Time) []models.AvailableDate {
	day := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]models.AvailableDate, 0, 7*len(weeklyStartHours))
	for d := 0; d < 7; d++ {
		date := day.AddDate(0, 0, d)
		for _, start := range weeklyStartHours {
			slots = append(slots, models.AvailableDate{
				Date:      date,
				StartTime: start,
				EndTime:   addHour(start),
			})
		}
	}
	return slots
}

func addHour(start string) string {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return start
	}
	return t.Add(time.Hour).Format("15:04")
}

// GenerateWeeklyTemplate bulk-inserts the weekly matrix. Slots that already
// exist for a (date, start time) are skipped silently; the returned count is
// the number actually created.
func GenerateWeeklyTemplate(db *gorm.DB, weekStart time.Time) (int, error) {
	slots := ExpandWeeklyTemplate(weekStart)

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&slots)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// CreateSlot inserts a single bookable slot.
func CreateSlot(db *gorm.DB, date time.Time, startTime, endTime string) (*models.AvailableDate, error) {
	if !timeOfDayPattern.MatchString(startTime) || !timeOfDayPattern.MatchString(endTime) {
		return nil, apperrors.NewValidation("start_time and end_time must be HH:MM")
	}
	if startTime >= endTime {
		return nil, apperrors.NewValidation("start_time must be before end_time")
	}

	slot := models.AvailableDate{
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		StartTime: startTime,
		EndTime:   endTime,
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&slot)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewConflict("a slot already exists for this date and time")
	}
	return &slot, nil
}

// ReserveSlot marks a slot booked and links it to the booking, inside the
// caller's transaction. The conditional update guarantees at most one
// concurrent reservation wins.
func ReserveSlot(tx *gorm.DB, slotID, bookingID uuid.UUID) error {
	res := tx.Model(&models.AvailableDate{}).
		Where("id = ? AND is_booked = ?", slotID, false).
		Updates(map[string]interface{}{"is_booked": true, "booking_id": bookingID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.AvailableDate{}).Where("id = ?", slotID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.NewNotFound("slot not found")
		}
		return apperrors.NewConflict("slot no longer available")
	}
	return nil
}

// ReleaseSlot frees a slot on cancellation or reschedule. Releasing an
// already-free slot is a no-op.
func ReleaseSlot(tx *gorm.DB, slotID uuid.UUID) error {
	return tx.Model(&models.AvailableDate{}).
		Where("id = ?", slotID).
		Updates(map[string]interface{}{"is_booked": false, "booking_id": nil}).Error
}

// DeleteSlot removes an unbooked slot. Booked slots are protected until
// their booking is cancelled.
func DeleteSlot(db *gorm.DB, slotID uuid.UUID) error {
	res := db.Where("id = ? AND is_booked = ?", slotID, false).Delete(&models.AvailableDate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.AvailableDate{}).Where("id = ?", slotID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.NewNotFound("slot not found")
		}
		return apperrors.NewConflict("cannot delete a booked slot")
	}
	return nil
}

// DaySlots groups one calendar day's open slots for display.
type DaySlots struct {
	Date  string                 `json:"date"`
	Slots []models.AvailableDate `json:"slots"`
}

// GroupSlotsByDay buckets slots by calendar day, preserving input order.
// Callers are expected to pass slots already ordered by date and start time.
func GroupSlotsByDay(slots []models.AvailableDate) []DaySlots {
	var grouped []DaySlots
	for _, slot := range slots {
		key := slot.Date.Format("2006-01-02")
		if len(grouped) == 0 || grouped[len(grouped)-1].Date != key {
			grouped = append(grouped, DaySlots{Date: key})
		}
		grouped[len(grouped)-1].Slots = append(grouped[len(grouped)-1].Slots, slot)
	}
	return grouped
}

// ListAvailableSlots returns unbooked slots from fromDate onward, grouped by
// day, ordered by date then start time.
func ListAvailableSlots(db *gorm.DB, fromDate time.Time) ([]DaySlots, error) {
	var slots []models.AvailableDate
	err := db.Where("is_booked = ? AND date >= ?", false, fromDate.Format("2006-01-02")).
		Order("date ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return GroupSlotsByDay(slots), nil
}

// ListAllSlots returns every slot for the admin calendar view.
func ListAllSlots(db *gorm.DB) ([]models.AvailableDate, error) {
	var slots []models.AvailableDate
	err := db.Order("date ASC, start_time ASC").Find(&slots).Error
	return slots, err
}
