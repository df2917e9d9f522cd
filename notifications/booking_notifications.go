package notifications

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
)

func studentFor(userID uuid.UUID) (*models.User, bool) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func NotifyBookingCreated(booking *models.MentorshipBooking) {
	student, ok := studentFor(booking.StudentID)
	if !ok {
		return
	}

	if booking.SessionType == models.SessionTypeRecorded {
		SendEmail(student.FullName, student.Email, "Your Recorded Session is Ready!",
			"<h1>Purchase Confirmed</h1><p>Your recorded session is available in your dashboard.</p>")
		return
	}

	when := ""
	if booking.SessionDate != nil && booking.SessionStartTime != nil {
		when = fmt.Sprintf(" on %s at %s", booking.SessionDate.Format("2006-01-02"), *booking.SessionStartTime)
	}
	SendEmail(student.FullName, student.Email, "Your Mentorship Booking is Received!",
		fmt.Sprintf("<h1>Booking Received</h1><p>Your face-to-face session%s is awaiting confirmation.</p>", when))
}

func NotifyBookingCancelled(booking *models.MentorshipBooking) {
	student, ok := studentFor(booking.StudentID)
	if !ok {
		return
	}
	SendEmail(student.FullName, student.Email, "Your Booking has been Cancelled",
		fmt.Sprintf("<h1>Booking Cancelled</h1><p>Your session was cancelled and %.2f has been refunded to your wallet.</p>", booking.Amount))
}

func NotifyTopUpResolved(txn *models.Transaction) {
	student, ok := studentFor(txn.UserID)
	if !ok {
		return
	}

	if txn.Status == models.TxnStatusApproved {
		SendEmail(student.FullName, student.Email, "Your Top-Up was Approved",
			fmt.Sprintf("<h1>Top-Up Approved</h1><p>%.2f has been added to your wallet.</p>", txn.Amount))
		return
	}
	SendEmail(student.FullName, student.Email, "Update on Your Top-Up Request",
		"<h1>Top-Up Rejected</h1><p>Your top-up request was reviewed and was not approved.</p>")
}
