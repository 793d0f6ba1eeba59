package testutils

import (
	"time"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

// HackathonFactory provides methods to create test Hackathon data
type HackathonFactory struct{}

// NewHackathonFactory creates a new HackathonFactory
func NewHackathonFactory() *HackathonFactory {
	return &HackathonFactory{}
}

// Create creates an open test Hackathon with room for ten students in teams of four
func (f *HackathonFactory) Create() *models.Hackathon {
	now := time.Now().UTC()
	return &models.Hackathon{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                    "Test Hackathon",
		Description:             "A test hackathon for testing purposes",
		Mode:                    models.HackathonModeOnline,
		Location:                "Online",
		PrimaryDomain:           "Developer Tools",
		PrimaryProblemStatement: "Make onboarding faster",
		PrizePool:               5000,
		StartDate:               now.Add(14 * 24 * time.Hour),
		EndDate:                 now.Add(16 * 24 * time.Hour),
		LastRegisterDate:        now.Add(7 * 24 * time.Hour),
		PostedBy:                uuid.New(),
		Registration: models.Registration{
			TotalCapacity:       10,
			CurrentlyRegistered: 0,
			RequiredTeamSize:    4,
		},
	}
}

// WithCapacity sets custom capacity counters
func (f *HackathonFactory) WithCapacity(total, registered, teamSize int) *models.Hackathon {
	h := f.Create()
	h.Registration = models.Registration{
		TotalCapacity:       total,
		CurrentlyRegistered: registered,
		RequiredTeamSize:    teamSize,
	}
	return h
}

// Closed creates a hackathon whose registration deadline has passed
func (f *HackathonFactory) Closed() *models.Hackathon {
	h := f.Create()
	h.LastRegisterDate = time.Now().UTC().Add(-time.Hour)
	return h
}

// IndividualApplicantFactory provides methods to create test IndividualApplicant data
type IndividualApplicantFactory struct{}

// NewIndividualApplicantFactory creates a new IndividualApplicantFactory
func NewIndividualApplicantFactory() *IndividualApplicantFactory {
	return &IndividualApplicantFactory{}
}

// Create creates a pending, unassigned applicant for a new student
func (f *IndividualApplicantFactory) Create() *models.IndividualApplicant {
	now := time.Now().UTC()
	return &models.IndividualApplicant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HackathonID:  uuid.New(),
		StudentID:    uuid.New(),
		Skills:       []string{"go", "postgres"},
		Status:       models.ApplicantStatusPending,
		RegisteredAt: now,
	}
}

// WithHackathon creates an applicant for the given hackathon
func (f *IndividualApplicantFactory) WithHackathon(hackathonID uuid.UUID) *models.IndividualApplicant {
	a := f.Create()
	a.HackathonID = hackathonID
	return a
}

// WithStatus creates an applicant of the given hackathon in the given status
func (f *IndividualApplicantFactory) WithStatus(hackathonID uuid.UUID, status models.ApplicantStatus) *models.IndividualApplicant {
	a := f.WithHackathon(hackathonID)
	a.Status = status
	return a
}

// TeamApplicantFactory provides methods to create test TeamApplicant data
type TeamApplicantFactory struct{}

// NewTeamApplicantFactory creates a new TeamApplicantFactory
func NewTeamApplicantFactory() *TeamApplicantFactory {
	return &TeamApplicantFactory{}
}

// Create creates a pending team applicant of four new students
func (f *TeamApplicantFactory) Create() *models.TeamApplicant {
	return f.WithMembers(uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New())
}

// WithMembers creates a pending team applicant for the hackathon with the given member students
func (f *TeamApplicantFactory) WithMembers(hackathonID uuid.UUID, studentIDs ...uuid.UUID) *models.TeamApplicant {
	now := time.Now().UTC()
	members := make([]models.TeamApplicantMember, len(studentIDs))
	for i, id := range studentIDs {
		members[i] = models.TeamApplicantMember{StudentID: id, HackathonID: hackathonID}
	}
	return &models.TeamApplicant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HackathonID:  hackathonID,
		TeamID:       uuid.New(),
		TeamName:     "Test Team",
		Source:       models.RegistrationSourceTeam,
		Status:       models.ApplicantStatusPending,
		SlotCount:    len(studentIDs),
		RegisteredAt: now,
		Members:      members,
	}
}

// TemporaryTeamFactory provides methods to create test TemporaryTeam data
type TemporaryTeamFactory struct{}

// NewTemporaryTeamFactory creates a new TemporaryTeamFactory
func NewTemporaryTeamFactory() *TemporaryTeamFactory {
	return &TemporaryTeamFactory{}
}

// FromApplicants creates a temporary team of the given applicants led by the first one
func (f *TemporaryTeamFactory) FromApplicants(hackathonID uuid.UUID, applicants ...*models.IndividualApplicant) *models.TemporaryTeam {
	now := time.Now().UTC()
	members := make([]models.TemporaryTeamMember, len(applicants))
	for i, a := range applicants {
		members[i] = models.TemporaryTeamMember{IndividualApplicantID: a.ID, StudentID: a.StudentID}
	}
	team := &models.TemporaryTeam{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HackathonID: hackathonID,
		TeamName:    "Temporary Team",
		FormedAt:    now,
		FormedBy:    uuid.New(),
		Members:     members,
	}
	if len(applicants) > 0 {
		team.LeaderID = applicants[0].StudentID
	}
	return team
}

// FactorySet provides access to all factories
type FactorySet struct {
	Hackathon           *HackathonFactory
	IndividualApplicant *IndividualApplicantFactory
	TeamApplicant       *TeamApplicantFactory
	TemporaryTeam       *TemporaryTeamFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Hackathon:           NewHackathonFactory(),
		IndividualApplicant: NewIndividualApplicantFactory(),
		TeamApplicant:       NewTeamApplicantFactory(),
		TemporaryTeam:       NewTemporaryTeamFactory(),
	}
}

// CreateApplicantPool creates n pending, unassigned individual applicants of one hackathon
func (fs *FactorySet) CreateApplicantPool(hackathonID uuid.UUID, n int) []*models.IndividualApplicant {
	pool := make([]*models.IndividualApplicant, n)
	for i := range pool {
		pool[i] = fs.IndividualApplicant.WithHackathon(hackathonID)
	}
	return pool
}
