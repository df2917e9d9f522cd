package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edutrackhq/edutrack/apperrors"
	"github.com/edutrackhq/edutrack/models"
)

// SubmitSummary creates a PENDING submission for a task. While a PENDING or
// APPROVED submission exists for the same (task, user) the new one is
// rejected; a REJECTED submission does not block resubmission. The student
// must be enrolled in the task's platform.
func SubmitSummary(db *gorm.DB, userID, taskID uuid.UUID, summary string) (*models.Submission, error) {
	var submission models.Submission
	err := db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			return apperrors.NewNotFound("task not found")
		}

		var enrolled int64
		if err := tx.Model(&models.Enrollment{}).
			Where("user_id = ? AND platform_id = ?", userID, task.PlatformID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled == 0 {
			return apperrors.NewAuthorization("you are not enrolled in this task's platform")
		}

		var active int64
		if err := tx.Model(&models.Submission{}).
			Where("task_id = ? AND user_id = ? AND status IN ?",
				taskID, userID, []string{models.SubmissionStatusPending, models.SubmissionStatusApproved}).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return apperrors.NewConflict("an active submission already exists for this task")
		}

		submission = models.Submission{
			TaskID:  taskID,
			UserID:  userID,
			Summary: summary,
			Status:  models.SubmissionStatusPending,
		}
		return tx.Create(&submission).Error
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

type GradeSubmissionInput struct {
	Status   *string
	Score    *int
	Feedback *string
}

// GradeSubmission updates the fields present in the request. Status moves
// freely among the three values; only the score range is constrained.
func GradeSubmission(db *gorm.DB, submissionID uuid.UUID, in GradeSubmissionInput) (*models.Submission, error) {
	if in.Score != nil && (*in.Score < 0 || *in.Score > 100) {
		return nil, apperrors.NewValidation("score must be between 0 and 100")
	}
	if in.Status != nil {
		switch *in.Status {
		case models.SubmissionStatusPending, models.SubmissionStatusApproved, models.SubmissionStatusRejected:
		default:
			return nil, apperrors.NewValidation("invalid submission status")
		}
	}

	var submission models.Submission
	if err := db.First(&submission, "id = ?", submissionID).Error; err != nil {
		return nil, apperrors.NewNotFound("submission not found")
	}

	if in.Status != nil {
		submission.Status = *in.Status
	}
	if in.Score != nil {
		submission.Score = in.Score
	}
	if in.Feedback != nil {
		submission.Feedback = in.Feedback
	}

	if err := db.Save(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// DeleteSubmission hard-deletes a submission.
func DeleteSubmission(db *gorm.DB, submissionID uuid.UUID) error {
	res := db.Delete(&models.Submission{}, "id = ?", submissionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("submission not found")
	}
	return nil
}

// GetSubmission fetches one submission with its task.
func GetSubmission(db *gorm.DB, submissionID uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	if err := db.Preload("Task").First(&submission, "id = ?", submissionID).Error; err != nil {
		return nil, apperrors.NewNotFound("submission not found")
	}
	return &submission, nil
}

// ListSubmissions returns the user's own submissions, or every submission
// for admins.
func ListSubmissions(db *gorm.DB, userID uuid.UUID, isAdmin bool) ([]models.Submission, error) {
	var submissions []models.Submission
	query := db.Preload("Task").Order("created_at DESC")
	if !isAdmin {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Find(&submissions).Error
	return submissions, err
}
