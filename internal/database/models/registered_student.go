package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisteredStudent is a post-approval roster entry of a hackathon
type RegisteredStudent struct {
	BaseModel
	HackathonID  uuid.UUID          `json:"hackathon_id" gorm:"type:uuid;not null;uniqueIndex:idx_registered_students_hackathon_student"`
	StudentID    uuid.UUID          `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_registered_students_hackathon_student"`
	Source       RegistrationSource `json:"source" gorm:"type:varchar(20);not null"`
	SourceID     uuid.UUID          `json:"source_id" gorm:"type:uuid;not null"`
	RegisteredAt time.Time          `json:"registered_at" gorm:"not null"`
}

// TableName returns the table name for RegisteredStudent
func (RegisteredStudent) TableName() string {
	return "registered_students"
}
