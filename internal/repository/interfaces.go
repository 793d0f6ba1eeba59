package repository

import (
	"context"
	"time"

	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// HackathonRepositoryInterface defines the interface for hackathon repository operations.
// ReserveSlots and ReleaseSlots are the atomic primitives behind the capacity guard.
type HackathonRepositoryInterface interface {
	Create(ctx context.Context, hackathon *models.Hackathon) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hackathon, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Hackathon, error)
	GetAll(ctx context.Context, filter HackathonFilter, limit, offset int) ([]models.Hackathon, int64, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, filter HackathonFilter) ([]models.Hackathon, error)
	UpdateTotalCapacity(ctx context.Context, id uuid.UUID, totalCapacity int) (bool, error)
	ReserveSlots(ctx context.Context, id uuid.UUID, slots int) (bool, error)
	ReleaseSlots(ctx context.Context, id uuid.UUID, slots int) error
}

// IndividualApplicantRepositoryInterface defines the interface for individual applicant operations
type IndividualApplicantRepositoryInterface interface {
	Create(ctx context.Context, applicant *models.IndividualApplicant) error
	GetByID(ctx context.Context, hackathonID, id uuid.UUID) (*models.IndividualApplicant, error)
	GetActiveByStudent(ctx context.Context, hackathonID, studentID uuid.UUID) (*models.IndividualApplicant, error)
	GetByStudentIDs(ctx context.Context, hackathonID uuid.UUID, studentIDs []uuid.UUID) ([]models.IndividualApplicant, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.IndividualApplicant, error)
	AssignToTemporaryTeam(ctx context.Context, applicantIDs []uuid.UUID, temporaryTeamID uuid.UUID) (int64, error)
	ReleaseFromTemporaryTeam(ctx context.Context, temporaryTeamID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicantStatus, review Review) (bool, error)
}

// TeamApplicantRepositoryInterface defines the interface for team applicant operations
type TeamApplicantRepositoryInterface interface {
	Create(ctx context.Context, applicant *models.TeamApplicant) error
	GetByID(ctx context.Context, hackathonID, id uuid.UUID) (*models.TeamApplicant, error)
	GetActiveByMember(ctx context.Context, hackathonID, studentID uuid.UUID) (*models.TeamApplicant, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.TeamApplicant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicantStatus, review Review) (bool, error)
}

// TemporaryTeamRepositoryInterface defines the interface for temporary team operations
type TemporaryTeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.TemporaryTeam) error
	GetByID(ctx context.Context, hackathonID, id uuid.UUID) (*models.TemporaryTeam, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.TemporaryTeam, error)
	MarkConverted(ctx context.Context, id, teamApplicantID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegisteredStudentRepositoryInterface defines the interface for the registered roster
type RegisteredStudentRepositoryInterface interface {
	AddMany(ctx context.Context, students []models.RegisteredStudent) error
	GetByStudent(ctx context.Context, hackathonID, studentID uuid.UUID) (*models.RegisteredStudent, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]models.RegisteredStudent, error)
}

// TransactorInterface runs a unit of work against repositories bound to one database transaction
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
	WithinSnapshot(ctx context.Context, fn func(repos *Repositories) error) error
}

// Review carries the reviewer metadata stored with a status transition
type Review struct {
	Feedback   string
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
}

// Repositories bundles the roster repositories that share one database handle
type Repositories struct {
	Hackathons           HackathonRepositoryInterface
	IndividualApplicants IndividualApplicantRepositoryInterface
	TeamApplicants       TeamApplicantRepositoryInterface
	TemporaryTeams       TemporaryTeamRepositoryInterface
	RegisteredStudents   RegisteredStudentRepositoryInterface
}
