package repository

import (
	"context"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamApplicantRepository handles database operations for team applicants
type TeamApplicantRepository struct {
	db *gorm.DB
}

// NewTeamApplicantRepository creates a new team applicant repository
func NewTeamApplicantRepository(db *gorm.DB) *TeamApplicantRepository {
	return &TeamApplicantRepository{db: db}
}

// Create creates a team applicant together with its member snapshot
func (r *TeamApplicantRepository) Create(ctx context.Context, applicant *models.TeamApplicant) error {
	for i := range applicant.Members {
		applicant.Members[i].HackathonID = applicant.HackathonID
	}
	return r.db.WithContext(ctx).Create(applicant).Error
}

// GetByID retrieves a team applicant of a hackathon with its members
func (r *TeamApplicantRepository) GetByID(ctx context.Context, hackathonID, id uuid.UUID) (*models.TeamApplicant, error) {
	var applicant models.TeamApplicant
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&applicant, "id = ? AND hackathon_id = ?", id, hackathonID).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// GetActiveByMember retrieves the non-rejected team applicant the student belongs to
func (r *TeamApplicantRepository) GetActiveByMember(ctx context.Context, hackathonID, studentID uuid.UUID) (*models.TeamApplicant, error) {
	var applicant models.TeamApplicant
	err := r.db.WithContext(ctx).
		Joins("JOIN team_applicant_members m ON m.team_applicant_id = team_applicants.id").
		Where("m.hackathon_id = ? AND m.student_id = ? AND team_applicants.status <> ?", hackathonID, studentID, models.ApplicantStatusRejected).
		Preload("Members").
		First(&applicant).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// ListByHackathon retrieves all team applicants of a hackathon with members, in registration order
func (r *TeamApplicantRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.TeamApplicant, error) {
	var applicants []models.TeamApplicant
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("hackathon_id = ?", hackathonID).
		Order("registered_at ASC").
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

// UpdateStatus moves a team applicant from one status to another. It returns false when the
// applicant is no longer in the from status.
func (r *TeamApplicantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicantStatus, review Review) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TeamApplicant{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":      to,
			"feedback":    review.Feedback,
			"reviewed_by": review.ReviewedBy,
			"reviewed_at": review.ReviewedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
