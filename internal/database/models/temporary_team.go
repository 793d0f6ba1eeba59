package models

import (
	"time"

	"github.com/google/uuid"
)

// TemporaryTeam is an admin-assembled group of previously unassigned individual applicants
type TemporaryTeam struct {
	BaseModel
	HackathonID              uuid.UUID             `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	TeamName                 string                `json:"team_name" gorm:"size:100;not null"`
	LeaderID                 uuid.UUID             `json:"leader_id" gorm:"type:uuid;not null"`
	FormedAt                 time.Time             `json:"formed_at" gorm:"not null"`
	FormedBy                 uuid.UUID             `json:"formed_by" gorm:"type:uuid;not null"`
	ConvertedTeamApplicantID *uuid.UUID            `json:"converted_team_applicant_id,omitempty" gorm:"type:uuid"`
	Members                  []TemporaryTeamMember `json:"members" gorm:"foreignKey:TemporaryTeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TemporaryTeam
func (TemporaryTeam) TableName() string {
	return "temporary_teams"
}

// IsConverted reports whether the team has been turned into an approved team applicant
func (t *TemporaryTeam) IsConverted() bool {
	return t.ConvertedTeamApplicantID != nil
}

// MemberIDs returns the student ids of the team members
func (t *TemporaryTeam) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.StudentID
	}
	return ids
}

// TemporaryTeamMember links an individual applicant to the temporary team it was grouped into
type TemporaryTeamMember struct {
	TemporaryTeamID       uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	IndividualApplicantID uuid.UUID `json:"individual_applicant_id" gorm:"type:uuid;primaryKey;uniqueIndex"`
	StudentID             uuid.UUID `json:"student_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for TemporaryTeamMember
func (TemporaryTeamMember) TableName() string {
	return "temporary_team_members"
}
