package repository

import (
	"context"
	"time"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HackathonRepository handles database operations for hackathons and their capacity counters
type HackathonRepository struct {
	db *gorm.DB
}

// NewHackathonRepository creates a new hackathon repository
func NewHackathonRepository(db *gorm.DB) *HackathonRepository {
	return &HackathonRepository{db: db}
}

// Create creates a new hackathon
func (r *HackathonRepository) Create(ctx context.Context, hackathon *models.Hackathon) error {
	return r.db.WithContext(ctx).Create(hackathon).Error
}

// GetByID retrieves a hackathon by ID
func (r *HackathonRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.db.WithContext(ctx).First(&hackathon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// GetForUpdate retrieves a hackathon and locks its row until the surrounding transaction ends.
// Every mutating roster operation takes this lock first, which serializes them per hackathon.
func (r *HackathonRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&hackathon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// HackathonFilter narrows hackathon listings to a timeframe measured at Now
type HackathonFilter struct {
	When models.Timeframe
	Now  time.Time
}

// scope restricts a query to the filter's timeframe
func (f HackathonFilter) scope(db *gorm.DB) *gorm.DB {
	switch f.When {
	case models.TimeframeUpcoming:
		return db.Where("end_date >= ?", f.Now)
	case models.TimeframePast:
		return db.Where("end_date < ?", f.Now)
	}
	return db
}

// GetAll retrieves hackathons with pagination, most recent registration deadline first
func (r *HackathonRepository) GetAll(ctx context.Context, filter HackathonFilter, limit, offset int) ([]models.Hackathon, int64, error) {
	var hackathons []models.Hackathon
	var total int64

	db := r.db.WithContext(ctx)

	// Get total count
	if err := db.Model(&models.Hackathon{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := db.Scopes(filter.scope).Order("last_register_date DESC").Limit(limit).Offset(offset).Find(&hackathons).Error
	if err != nil {
		return nil, 0, err
	}

	return hackathons, total, nil
}

// ListByStudent retrieves the hackathons a student is registered for: on the roster, or holding an
// individual or team application that has not been rejected. Ordered by start date.
func (r *HackathonRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, filter HackathonFilter) ([]models.Hackathon, error) {
	db := r.db.WithContext(ctx)

	roster := db.Model(&models.RegisteredStudent{}).
		Select("hackathon_id").
		Where("student_id = ?", studentID)
	individual := db.Model(&models.IndividualApplicant{}).
		Select("hackathon_id").
		Where("student_id = ? AND status <> ?", studentID, models.ApplicantStatusRejected)
	team := db.Table("team_applicant_members AS m").
		Select("m.hackathon_id").
		Joins("JOIN team_applicants t ON t.id = m.team_applicant_id").
		Where("m.student_id = ? AND t.status <> ?", studentID, models.ApplicantStatusRejected)

	var hackathons []models.Hackathon
	err := db.Scopes(filter.scope).
		Where("id IN (?) OR id IN (?) OR id IN (?)", roster, individual, team).
		Order("start_date ASC").
		Find(&hackathons).Error
	if err != nil {
		return nil, err
	}
	return hackathons, nil
}

// UpdateTotalCapacity sets a new total capacity unless it would drop below the current registrations.
// It returns false when the hackathon does not exist or the new capacity is too small.
func (r *HackathonRepository) UpdateTotalCapacity(ctx context.Context, id uuid.UUID, totalCapacity int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ? AND currently_registered <= ?", id, totalCapacity).
		Update("total_capacity", totalCapacity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ReserveSlots atomically increments currently_registered by slots when the result stays within
// total_capacity. It returns false, leaving the counter unchanged, when there is not enough room.
func (r *HackathonRepository) ReserveSlots(ctx context.Context, id uuid.UUID, slots int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ? AND currently_registered + ? <= total_capacity", id, slots).
		Update("currently_registered", gorm.Expr("currently_registered + ?", slots))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ReleaseSlots atomically decrements currently_registered by slots, never below zero
func (r *HackathonRepository) ReleaseSlots(ctx context.Context, id uuid.UUID, slots int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ?", id).
		Update("currently_registered", gorm.Expr("GREATEST(currently_registered - ?, 0)", slots))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
