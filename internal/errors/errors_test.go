package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "hackathon"}
		assert.Equal(t, "hackathon not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "hackathon"}
		err2 := &NotFoundError{Entity: "hackathon"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrHackathonNotFound, ErrTemporaryTeamNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamApplicantNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrHackathonNotFound)))
		assert.False(t, IsNotFound(ErrCapacityFull))
	})
}

func TestRejectionError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "hackathon has no remaining capacity", ErrCapacityFull.Error())
	})

	t.Run("errors.Is matches on reason", func(t *testing.T) {
		err := &RejectionError{Reason: ReasonCapacityFull, Message: "only 2 slots left"}
		assert.True(t, errors.Is(err, ErrCapacityFull))
		assert.False(t, errors.Is(err, ErrRegistrationClosed))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("register team: %w", ErrAlreadyRegistered)
		assert.True(t, errors.Is(wrapped, ErrAlreadyRegistered))
		assert.False(t, errors.Is(wrapped, ErrTeamSizeMismatch))
	})

	t.Run("empty reason target matches any rejection", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeaderNotInTeam, &RejectionError{}))
	})

	t.Run("IsRejection and RejectionReason helpers", func(t *testing.T) {
		assert.True(t, IsRejection(ErrMemberUnavailable))
		assert.False(t, IsRejection(ErrHackathonNotFound))
		assert.Equal(t, ReasonMissingTeamName, RejectionReason(fmt.Errorf("form: %w", ErrMissingTeamName)))
		assert.Equal(t, "", RejectionReason(errors.New("boom")))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "total_capacity", Message: "below current registrations"}
		assert.Equal(t, "validation error: total_capacity - below current registrations", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("status", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrHackathonNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsAuthentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingActor))
		assert.True(t, IsAuthentication(fmt.Errorf("register: %w", ErrMissingActor)))
		assert.False(t, IsAuthentication(ErrAdminRequired))
	})

	t.Run("IsAuthorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrAdminRequired))
		assert.False(t, IsAuthorization(ErrMissingActor))
	})
}
