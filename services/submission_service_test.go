package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/edutrackhq/edutrack/apperrors"
)

// Input validation runs before any database access, so these cases can be
// exercised without a connection.
func TestGradeSubmissionValidation(t *testing.T) {
	score := func(v int) *int { return &v }
	status := func(v string) *string { return &v }

	t.Run("score below range", func(t *testing.T) {
		_, err := GradeSubmission(nil, uuid.New(), GradeSubmissionInput{Score: score(-5)})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("score above range", func(t *testing.T) {
		_, err := GradeSubmission(nil, uuid.New(), GradeSubmissionInput{Score: score(150)})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := GradeSubmission(nil, uuid.New(), GradeSubmissionInput{Status: status("GRADED")})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}
