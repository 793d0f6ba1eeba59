package service

import (
	"context"
	"errors"
	"fmt"

	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/repository"

	"gorm.io/gorm"
)

// CapacityGuard reserves and releases registration slots on a hackathon's counter.
// A reservation either takes all requested slots or none.
type CapacityGuard struct{}

// NewCapacityGuard creates a new capacity guard
func NewCapacityGuard() *CapacityGuard {
	return &CapacityGuard{}
}

// Reserve takes slots from the hackathon or fails with ErrCapacityFull
func (g *CapacityGuard) Reserve(ctx context.Context, hackathons repository.HackathonRepositoryInterface, hackathon *models.Hackathon, slots int) error {
	ok, err := hackathons.ReserveSlots(ctx, hackathon.ID, slots)
	if err != nil {
		return fmt.Errorf("failed to reserve capacity: %w", err)
	}
	if !ok {
		return apperrors.ErrCapacityFull
	}
	hackathon.Registration.CurrentlyRegistered += slots
	return nil
}

// Release returns slots to the hackathon; the counter never drops below zero
func (g *CapacityGuard) Release(ctx context.Context, hackathons repository.HackathonRepositoryInterface, hackathon *models.Hackathon, slots int) error {
	if err := hackathons.ReleaseSlots(ctx, hackathon.ID, slots); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHackathonNotFound
		}
		return fmt.Errorf("failed to release capacity: %w", err)
	}
	hackathon.Registration.CurrentlyRegistered -= slots
	if hackathon.Registration.CurrentlyRegistered < 0 {
		hackathon.Registration.CurrentlyRegistered = 0
	}
	return nil
}
