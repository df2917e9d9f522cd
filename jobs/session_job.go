package jobs

import (
	"log"
	"time"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
)

// CompleteElapsedSessions moves confirmed face-to-face bookings whose slot
// has ended to COMPLETED. Runs on a cron schedule from main.
func CompleteElapsedSessions() {
	log.Println("Running job: CompleteElapsedSessions...")

	now := time.Now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	var elapsed []models.MentorshipBooking
	err := database.DB.
		Where("status = ? AND session_type = ?", models.BookingStatusConfirmed, models.SessionTypeFaceToFace).
		Where("session_date < ? OR (session_date = ? AND session_end_time <= ?)", today, today, clock).
		Find(&elapsed).Error
	if err != nil {
		log.Printf("Error checking for elapsed sessions: %v", err)
		return
	}

	if len(elapsed) == 0 {
		log.Println("No elapsed sessions found.")
		return
	}

	for _, booking := range elapsed {
		booking.Status = models.BookingStatusCompleted
		database.DB.Save(&booking)
	}

	log.Printf("Marked %d booking(s) as completed.", len(elapsed))
}
