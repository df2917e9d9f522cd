package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrackhq/edutrack/apperrors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidation("amount out of bounds"), 400},
		{"authorization", apperrors.NewAuthorization("admin only"), 403},
		{"insufficient balance", apperrors.NewInsufficientBalance("top up first"), 402},
		{"not found", apperrors.NewNotFound("no such booking"), 404},
		{"conflict", apperrors.NewConflict("slot no longer available"), 409},
		{"unexpected", errors.New("disk on fire"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestStatusCodeWrapped(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", apperrors.NewConflict("slot no longer available"))
	assert.Equal(t, 409, apperrors.StatusCode(err))
	assert.True(t, apperrors.IsExpected(err))
}

func TestIsExpected(t *testing.T) {
	assert.True(t, apperrors.IsExpected(apperrors.NewValidation("bad input")))
	assert.False(t, apperrors.IsExpected(errors.New("connection reset")))
}
