package repository

import (
	"context"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IndividualApplicantRepository handles database operations for individual applicants
type IndividualApplicantRepository struct {
	db *gorm.DB
}

// NewIndividualApplicantRepository creates a new individual applicant repository
func NewIndividualApplicantRepository(db *gorm.DB) *IndividualApplicantRepository {
	return &IndividualApplicantRepository{db: db}
}

// Create creates a new individual applicant
func (r *IndividualApplicantRepository) Create(ctx context.Context, applicant *models.IndividualApplicant) error {
	return r.db.WithContext(ctx).Create(applicant).Error
}

// GetByID retrieves an individual applicant of a hackathon by ID
func (r *IndividualApplicantRepository) GetByID(ctx context.Context, hackathonID, id uuid.UUID) (*models.IndividualApplicant, error) {
	var applicant models.IndividualApplicant
	err := r.db.WithContext(ctx).First(&applicant, "id = ? AND hackathon_id = ?", id, hackathonID).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// GetActiveByStudent retrieves the student's non-rejected application to a hackathon
func (r *IndividualApplicantRepository) GetActiveByStudent(ctx context.Context, hackathonID, studentID uuid.UUID) (*models.IndividualApplicant, error) {
	var applicant models.IndividualApplicant
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND student_id = ? AND status <> ?", hackathonID, studentID, models.ApplicantStatusRejected).
		First(&applicant).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// GetByStudentIDs retrieves the non-rejected applications of the given students to a hackathon
func (r *IndividualApplicantRepository) GetByStudentIDs(ctx context.Context, hackathonID uuid.UUID, studentIDs []uuid.UUID) ([]models.IndividualApplicant, error) {
	var applicants []models.IndividualApplicant
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND student_id IN ? AND status <> ?", hackathonID, studentIDs, models.ApplicantStatusRejected).
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

// ListByHackathon retrieves all individual applicants of a hackathon in registration order
func (r *IndividualApplicantRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.IndividualApplicant, error) {
	var applicants []models.IndividualApplicant
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("registered_at ASC").
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

// AssignToTemporaryTeam marks the given applicants as grouped into a temporary team. Only
// unassigned, non-rejected applicants are touched; the caller compares the returned count with
// the number of ids to detect applicants that were not available.
func (r *IndividualApplicantRepository) AssignToTemporaryTeam(ctx context.Context, applicantIDs []uuid.UUID, temporaryTeamID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.IndividualApplicant{}).
		Where("id IN ? AND assigned_to_temp_team = ? AND status <> ?", applicantIDs, false, models.ApplicantStatusRejected).
		Updates(map[string]interface{}{
			"assigned_to_temp_team": true,
			"temporary_team_id":     temporaryTeamID,
		})
	return result.RowsAffected, result.Error
}

// ReleaseFromTemporaryTeam returns every member of a temporary team to the unassigned pool
func (r *IndividualApplicantRepository) ReleaseFromTemporaryTeam(ctx context.Context, temporaryTeamID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.IndividualApplicant{}).
		Where("temporary_team_id = ?", temporaryTeamID).
		Updates(map[string]interface{}{
			"assigned_to_temp_team": false,
			"temporary_team_id":     nil,
		})
	return result.RowsAffected, result.Error
}

// UpdateStatus moves an applicant from one status to another. It returns false when the
// applicant is no longer in the from status.
func (r *IndividualApplicantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicantStatus, review Review) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.IndividualApplicant{}).
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
