package service

import (
	"context"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// HackathonServiceInterface defines the interface for the hackathon catalog
type HackathonServiceInterface interface {
	CreateHackathon(ctx context.Context, actor auth.Actor, req *CreateHackathonRequest) (*HackathonResponse, error)
	GetHackathon(ctx context.Context, id uuid.UUID) (*HackathonResponse, error)
	ListHackathons(ctx context.Context, page, pageSize int, when models.Timeframe) (*HackathonListResponse, error)
	ListRegisteredHackathons(ctx context.Context, studentID uuid.UUID, when models.Timeframe) (*StudentHackathonsResponse, error)
	UpdateCapacity(ctx context.Context, id uuid.UUID, actor auth.Actor, req *UpdateCapacityRequest) (*HackathonResponse, error)
	GetRosterSnapshot(ctx context.Context, id uuid.UUID) (*RosterSnapshotResponse, error)
}

// RegistrationServiceInterface defines the interface for student registration
type RegistrationServiceInterface interface {
	Register(ctx context.Context, hackathonID uuid.UUID, actor auth.Actor, req *RegisterRequest) (*RegistrationResponse, error)
	GetRegistrationStatus(ctx context.Context, hackathonID, studentID uuid.UUID) (*RegistrationStatusResponse, error)
}

// TeamFormationServiceInterface defines the interface for temporary team management
type TeamFormationServiceInterface interface {
	FormTemporaryTeam(ctx context.Context, hackathonID uuid.UUID, actor auth.Actor, req *FormTemporaryTeamRequest) (*TemporaryTeamResponse, error)
	DissolveTemporaryTeam(ctx context.Context, hackathonID, teamID uuid.UUID, actor auth.Actor) error
	ConvertTemporaryTeam(ctx context.Context, hackathonID, teamID uuid.UUID, actor auth.Actor) (*TeamApplicantResponse, error)
}

// ApplicantReviewServiceInterface defines the interface for applicant review decisions
type ApplicantReviewServiceInterface interface {
	SetTeamApplicantStatus(ctx context.Context, hackathonID, applicantID uuid.UUID, actor auth.Actor, req *SetStatusRequest) (*TeamApplicantResponse, error)
	SetIndividualApplicantStatus(ctx context.Context, hackathonID, applicantID uuid.UUID, actor auth.Actor, req *SetStatusRequest) (*IndividualApplicantResponse, error)
}

var (
	_ HackathonServiceInterface       = (*HackathonService)(nil)
	_ RegistrationServiceInterface    = (*RegistrationService)(nil)
	_ TeamFormationServiceInterface   = (*TeamFormationService)(nil)
	_ ApplicantReviewServiceInterface = (*ApplicantReviewService)(nil)
)
