package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Rejection reasons reported to callers of registration, formation and review operations.
const (
	ReasonRegistrationClosed      = "RegistrationClosed"
	ReasonCapacityFull            = "CapacityFull"
	ReasonAlreadyRegistered       = "AlreadyRegistered"
	ReasonTeamSizeMismatch        = "TeamSizeMismatch"
	ReasonInvalidMemberCount      = "InvalidMemberCount"
	ReasonMemberUnavailable       = "MemberUnavailable"
	ReasonLeaderNotInTeam         = "LeaderNotInTeam"
	ReasonMissingTeamName         = "MissingTeamName"
	ReasonInvalidStatusTransition = "InvalidStatusTransition"
	ReasonTeamAlreadyConverted    = "TeamAlreadyConverted"
)

// RejectionError is an expected, named failure of a core operation. The operation that
// returns it has left all state unchanged.
type RejectionError struct {
	Reason  string
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for RejectionError
func (e *RejectionError) Is(target error) bool {
	t, ok := target.(*RejectionError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrHackathonNotFound           = &NotFoundError{Entity: "hackathon"}
	ErrIndividualApplicantNotFound = &NotFoundError{Entity: "individual applicant"}
	ErrTeamApplicantNotFound       = &NotFoundError{Entity: "team applicant"}
	ErrTemporaryTeamNotFound       = &NotFoundError{Entity: "temporary team"}
)

// Registration Errors
var (
	ErrRegistrationClosed = &RejectionError{Reason: ReasonRegistrationClosed, Message: "registration for this hackathon is closed"}
	ErrCapacityFull       = &RejectionError{Reason: ReasonCapacityFull, Message: "hackathon has no remaining capacity"}
	ErrAlreadyRegistered  = &RejectionError{Reason: ReasonAlreadyRegistered, Message: "student is already registered for this hackathon"}
	ErrTeamSizeMismatch   = &RejectionError{Reason: ReasonTeamSizeMismatch, Message: "team member count does not match the required team size"}
)

// Team Formation Errors
var (
	ErrInvalidMemberCount   = &RejectionError{Reason: ReasonInvalidMemberCount, Message: "temporary team needs exactly the required number of distinct members"}
	ErrMemberUnavailable    = &RejectionError{Reason: ReasonMemberUnavailable, Message: "one or more members are not unassigned individual applicants of this hackathon"}
	ErrLeaderNotInTeam      = &RejectionError{Reason: ReasonLeaderNotInTeam, Message: "leader must be one of the team members"}
	ErrMissingTeamName      = &RejectionError{Reason: ReasonMissingTeamName, Message: "team name is required"}
	ErrTeamAlreadyConverted = &RejectionError{Reason: ReasonTeamAlreadyConverted, Message: "temporary team has already been converted"}
)

// Review Errors
var (
	ErrInvalidStatusTransition = &RejectionError{Reason: ReasonInvalidStatusTransition, Message: "invalid applicant status transition"}
)

// Authentication Errors
var (
	ErrMissingActor  = &AuthenticationError{Message: "authenticated actor not found in context"}
	ErrAdminRequired = &AuthorizationError{Message: "administrator role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsRejection checks if an error is a RejectionError
func IsRejection(err error) bool {
	var rejectionErr *RejectionError
	return errors.As(err, &rejectionErr)
}

// RejectionReason returns the reason code of a RejectionError, or "" for any other error
func RejectionReason(err error) string {
	var rejectionErr *RejectionError
	if errors.As(err, &rejectionErr) {
		return rejectionErr.Reason
	}
	return ""
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
