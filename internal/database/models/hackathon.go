package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration holds the capacity counters of a hackathon
type Registration struct {
	TotalCapacity       int `json:"total_capacity" gorm:"not null;check:chk_hackathons_total_capacity,total_capacity > 0"`
	CurrentlyRegistered int `json:"currently_registered" gorm:"not null;default:0;check:chk_hackathons_registered_range,currently_registered >= 0 AND currently_registered <= total_capacity"`
	RequiredTeamSize    int `json:"required_team_size" gorm:"not null;default:4;check:chk_hackathons_team_size,required_team_size > 0"`
}

// RemainingCapacity returns the number of free slots
func (r Registration) RemainingCapacity() int {
	if remaining := r.TotalCapacity - r.CurrentlyRegistered; remaining > 0 {
		return remaining
	}
	return 0
}

// IsFull reports whether no slot is left
func (r Registration) IsFull() bool {
	return r.CurrentlyRegistered >= r.TotalCapacity
}

// Hackathon represents a scheduled competitive event with a fixed registration capacity
type Hackathon struct {
	BaseModel
	Name                    string        `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Description             string        `json:"description" gorm:"type:text"`
	Mode                    HackathonMode `json:"mode" gorm:"type:varchar(20);not null;default:'online'"`
	Location                string        `json:"location" gorm:"size:200"`
	PrimaryDomain           string        `json:"primary_domain" gorm:"size:200"`
	PrimaryProblemStatement string        `json:"primary_problem_statement" gorm:"type:text"`
	PrizePool               int64         `json:"prize_pool" gorm:"not null;default:0"`
	StartDate               time.Time     `json:"start_date" gorm:"not null"`
	EndDate                 time.Time     `json:"end_date" gorm:"not null"`
	LastRegisterDate        time.Time     `json:"last_register_date" gorm:"not null;index"`
	PostedBy                uuid.UUID     `json:"posted_by" gorm:"type:uuid;not null;index"`
	Registration            Registration  `json:"registration" gorm:"embedded"`

	// Relationships
	IndividualApplicants []IndividualApplicant `json:"individual_applicants,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
	TeamApplicants       []TeamApplicant       `json:"team_applicants,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
	TemporaryTeams       []TemporaryTeam       `json:"temporary_teams,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
	RegisteredStudents   []RegisteredStudent   `json:"registered_students,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Hackathon
func (Hackathon) TableName() string {
	return "hackathons"
}

// IsRegistrationOpen reports whether registration is still accepted at the given instant
func (h *Hackathon) IsRegistrationOpen(now time.Time) bool {
	return !now.After(h.LastRegisterDate)
}
