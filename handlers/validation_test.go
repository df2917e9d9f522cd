package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeSubmissionRequestValidation(t *testing.T) {
	score := func(v int) *int { return &v }
	status := func(v string) *string { return &v }

	t.Run("score within bounds", func(t *testing.T) {
		assert.NoError(t, validate.Struct(GradeSubmissionRequest{Score: score(0)}))
		assert.NoError(t, validate.Struct(GradeSubmissionRequest{Score: score(100)}))
	})

	t.Run("score out of bounds", func(t *testing.T) {
		assert.Error(t, validate.Struct(GradeSubmissionRequest{Score: score(-1)}))
		assert.Error(t, validate.Struct(GradeSubmissionRequest{Score: score(101)}))
	})

	t.Run("status restricted to the three values", func(t *testing.T) {
		assert.NoError(t, validate.Struct(GradeSubmissionRequest{Status: status("APPROVED")}))
		assert.Error(t, validate.Struct(GradeSubmissionRequest{Status: status("GRADED")}))
	})
}

func TestResolveTopUpRequestValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate.Struct(ResolveTopUpRequest{
			TransactionID: "6f1e0c9a-92a5-4e88-9c7b-1df35a2b9f10",
			Action:        "APPROVE",
		}))
	})

	t.Run("bad action", func(t *testing.T) {
		assert.Error(t, validate.Struct(ResolveTopUpRequest{
			TransactionID: "6f1e0c9a-92a5-4e88-9c7b-1df35a2b9f10",
			Action:        "MAYBE",
		}))
	})

	t.Run("bad transaction id", func(t *testing.T) {
		assert.Error(t, validate.Struct(ResolveTopUpRequest{
			TransactionID: "not-a-uuid",
			Action:        "REJECT",
		}))
	})
}

func TestCreateMentorshipRequestValidation(t *testing.T) {
	t.Run("session type restricted", func(t *testing.T) {
		assert.Error(t, validate.Struct(CreateMentorshipRequest{SessionType: "LIVE"}))
		assert.NoError(t, validate.Struct(CreateMentorshipRequest{SessionType: "RECORDED"}))
	})
}
