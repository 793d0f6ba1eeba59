package models

import (
	"time"

	"github.com/google/uuid"
)

// IndividualApplicant is a student registered for a hackathon without a pre-formed team
type IndividualApplicant struct {
	BaseModel
	HackathonID        uuid.UUID       `json:"hackathon_id" gorm:"type:uuid;not null;uniqueIndex:idx_individual_applicants_active,where:status <> 'rejected'"`
	StudentID          uuid.UUID       `json:"student_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_individual_applicants_active,where:status <> 'rejected'"`
	Skills             []string        `json:"skills" gorm:"type:jsonb;serializer:json"`
	Status             ApplicantStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	AssignedToTempTeam bool            `json:"assigned_to_temp_team" gorm:"not null;default:false"`
	TemporaryTeamID    *uuid.UUID      `json:"temporary_team_id,omitempty" gorm:"type:uuid;index"`
	RegisteredAt       time.Time       `json:"registered_at" gorm:"not null"`
	Feedback           string          `json:"feedback,omitempty" gorm:"type:text"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`
	ReviewedBy         *uuid.UUID      `json:"reviewed_by,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for IndividualApplicant
func (IndividualApplicant) TableName() string {
	return "individual_applicants"
}

// IsAvailableForTeam reports whether the applicant may be grouped into a temporary team
func (a *IndividualApplicant) IsAvailableForTeam() bool {
	return !a.AssignedToTempTeam && a.Status != ApplicantStatusRejected
}

// TeamApplicant is a pre-formed team's registration submission
type TeamApplicant struct {
	BaseModel
	HackathonID     uuid.UUID             `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	TeamID          uuid.UUID             `json:"team_id" gorm:"type:uuid;not null;index"`
	TeamName        string                `json:"team_name" gorm:"size:100;not null"`
	Source          RegistrationSource    `json:"source" gorm:"type:varchar(20);not null;default:'team'"`
	TemporaryTeamID *uuid.UUID            `json:"temporary_team_id,omitempty" gorm:"type:uuid"`
	Status          ApplicantStatus       `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	SlotCount       int                   `json:"slot_count" gorm:"not null"`
	RegisteredAt    time.Time             `json:"registered_at" gorm:"not null"`
	Feedback        string                `json:"feedback,omitempty" gorm:"type:text"`
	ReviewedAt      *time.Time            `json:"reviewed_at,omitempty"`
	ReviewedBy      *uuid.UUID            `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	Members         []TeamApplicantMember `json:"members" gorm:"foreignKey:TeamApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamApplicant
func (TeamApplicant) TableName() string {
	return "team_applicants"
}

// MemberIDs returns the student ids of the member snapshot
func (t *TeamApplicant) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.StudentID
	}
	return ids
}

// TeamApplicantMember is one student of a team applicant's member snapshot
type TeamApplicantMember struct {
	TeamApplicantID uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	StudentID       uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;index:idx_team_applicant_members_lookup,priority:2"`
	HackathonID     uuid.UUID `json:"-" gorm:"type:uuid;not null;index:idx_team_applicant_members_lookup,priority:1"`
}

// TableName returns the table name for TeamApplicantMember
func (TeamApplicantMember) TableName() string {
	return "team_applicant_members"
}
