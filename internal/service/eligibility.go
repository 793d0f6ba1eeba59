package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clock returns the current instant
type Clock func() time.Time

// EligibilityChecker decides whether a student may register for a hackathon
type EligibilityChecker struct {
	now Clock
}

// NewEligibilityChecker creates a checker reading time from now, or from time.Now when nil
func NewEligibilityChecker(now Clock) *EligibilityChecker {
	if now == nil {
		now = time.Now
	}
	return &EligibilityChecker{now: now}
}

// Now returns the checker's current instant
func (c *EligibilityChecker) Now() time.Time {
	return c.now().UTC()
}

// Check applies every eligibility rule; the first failing rule decides the rejection
func (c *EligibilityChecker) Check(ctx context.Context, repos *repository.Repositories, hackathon *models.Hackathon, studentID uuid.UUID) error {
	if err := c.CheckWindow(hackathon); err != nil {
		return err
	}
	return c.CheckNotRegistered(ctx, repos, hackathon.ID, studentID)
}

// CheckWindow rejects when the deadline has passed or no slot is left
func (c *EligibilityChecker) CheckWindow(hackathon *models.Hackathon) error {
	if !hackathon.IsRegistrationOpen(c.now()) {
		return apperrors.ErrRegistrationClosed
	}
	if hackathon.Registration.IsFull() {
		return apperrors.ErrCapacityFull
	}
	return nil
}

// CheckNotRegistered rejects when the student already appears in any registration path
func (c *EligibilityChecker) CheckNotRegistered(ctx context.Context, repos *repository.Repositories, hackathonID, studentID uuid.UUID) error {
	if _, err := repos.RegisteredStudents.GetByStudent(ctx, hackathonID, studentID); err == nil {
		return apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check registered roster: %w", err)
	}

	if _, err := repos.IndividualApplicants.GetActiveByStudent(ctx, hackathonID, studentID); err == nil {
		return apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check individual applications: %w", err)
	}

	if _, err := repos.TeamApplicants.GetActiveByMember(ctx, hackathonID, studentID); err == nil {
		return apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check team applications: %w", err)
	}

	return nil
}
