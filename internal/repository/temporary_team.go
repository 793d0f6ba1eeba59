package repository

import (
	"context"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemporaryTeamRepository handles database operations for temporary teams
type TemporaryTeamRepository struct {
	db *gorm.DB
}

// NewTemporaryTeamRepository creates a new temporary team repository
func NewTemporaryTeamRepository(db *gorm.DB) *TemporaryTeamRepository {
	return &TemporaryTeamRepository{db: db}
}

// Create creates a temporary team together with its member links
func (r *TemporaryTeamRepository) Create(ctx context.Context, team *models.TemporaryTeam) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a temporary team of a hackathon with its members
func (r *TemporaryTeamRepository) GetByID(ctx context.Context, hackathonID, id uuid.UUID) (*models.TemporaryTeam, error) {
	var team models.TemporaryTeam
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&team, "id = ? AND hackathon_id = ?", id, hackathonID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByHackathon retrieves all temporary teams of a hackathon with members, oldest first
func (r *TemporaryTeamRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.TemporaryTeam, error) {
	var teams []models.TemporaryTeam
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("hackathon_id = ?", hackathonID).
		Order("formed_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// MarkConverted links a temporary team to the team applicant it was converted into
func (r *TemporaryTeamRepository) MarkConverted(ctx context.Context, id, teamApplicantID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.TemporaryTeam{}).
		Where("id = ? AND converted_team_applicant_id IS NULL", id).
		Update("converted_team_applicant_id", teamApplicantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a temporary team; its member links are removed by cascade
func (r *TemporaryTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TemporaryTeam{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
