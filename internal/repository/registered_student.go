package repository

import (
	"context"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisteredStudentRepository handles database operations for the registered roster
type RegisteredStudentRepository struct {
	db *gorm.DB
}

// NewRegisteredStudentRepository creates a new registered student repository
func NewRegisteredStudentRepository(db *gorm.DB) *RegisteredStudentRepository {
	return &RegisteredStudentRepository{db: db}
}

// AddMany inserts roster entries; students already on the roster keep their existing entry
func (r *RegisteredStudentRepository) AddMany(ctx context.Context, students []models.RegisteredStudent) error {
	if len(students) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hackathon_id"}, {Name: "student_id"}},
			DoNothing: true,
		}).
		Create(&students).Error
}

// GetByStudent retrieves the roster entry of a student
func (r *RegisteredStudentRepository) GetByStudent(ctx context.Context, hackathonID, studentID uuid.UUID) (*models.RegisteredStudent, error) {
	var student models.RegisteredStudent
	err := r.db.WithContext(ctx).
		First(&student, "hackathon_id = ? AND student_id = ?", hackathonID, studentID).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByHackathon retrieves the registered roster of a hackathon
func (r *RegisteredStudentRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.RegisteredStudent, error) {
	var students []models.RegisteredStudent
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("registered_at ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
