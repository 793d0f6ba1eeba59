package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/logger"
	"hackathon-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validate runs struct validation and reports the first failing field as a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// requireAdmin rejects actors that may not invoke administrative operations
func requireAdmin(actor auth.Actor) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// lockHackathon loads the hackathon row under FOR UPDATE
func lockHackathon(ctx context.Context, repos *repository.Repositories, id uuid.UUID) (*models.Hackathon, error) {
	hackathon, err := repos.Hackathons.GetForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrHackathonNotFound, "load hackathon")
	}
	return hackathon, nil
}

// notFoundOr maps gorm.ErrRecordNotFound to notFound and wraps any other storage error
func notFoundOr(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// distinctIDs returns ids without duplicates, keeping first occurrences in order
func distinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// rosterEntries builds registered roster rows for the given students
func rosterEntries(hackathonID uuid.UUID, source models.RegistrationSource, sourceID uuid.UUID, studentIDs []uuid.UUID, at time.Time) []models.RegisteredStudent {
	entries := make([]models.RegisteredStudent, len(studentIDs))
	for i, id := range studentIDs {
		entries[i] = models.RegisteredStudent{
			HackathonID:  hackathonID,
			StudentID:    id,
			Source:       source,
			SourceID:     sourceID,
			RegisteredAt: at,
		}
	}
	return entries
}

// publishEvent publishes after commit; failures are logged and never reach the caller
func publishEvent(ctx context.Context, publisher events.Publisher, subject string, event events.Event) {
	if err := publisher.Publish(ctx, subject, event); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("subject", subject).Warn("Failed to publish roster event")
	}
}
