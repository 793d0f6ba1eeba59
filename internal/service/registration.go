package service

import (
	"context"
	"errors"
	"fmt"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/logger"
	"hackathon-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RegistrationService registers students for hackathons, alone or as a pre-formed team
type RegistrationService struct {
	tx        repository.TransactorInterface
	repos     *repository.Repositories
	checker   *EligibilityChecker
	capacity  *CapacityGuard
	publisher events.Publisher
	validator *validator.Validate
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(tx repository.TransactorInterface, repos *repository.Repositories, checker *EligibilityChecker, capacity *CapacityGuard, publisher events.Publisher, validator *validator.Validate) *RegistrationService {
	return &RegistrationService{
		tx:        tx,
		repos:     repos,
		checker:   checker,
		capacity:  capacity,
		publisher: publisher,
		validator: validator,
	}
}

// RegisterRequest represents a registration attempt by the authenticated student
type RegisterRequest struct {
	Mode   models.RegistrationMode `json:"mode" validate:"required,oneof=individual team"`
	Skills []string                `json:"skills,omitempty" validate:"max=20,dive,max=50"`
	Team   *TeamRegistration       `json:"team,omitempty" validate:"required_if=Mode team"`
}

// TeamRegistration describes the pre-formed team of a team registration
type TeamRegistration struct {
	TeamID    uuid.UUID   `json:"team_id"`
	TeamName  string      `json:"team_name" validate:"required,max=100"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

// RegistrationResponse represents the outcome of a successful registration
type RegistrationResponse struct {
	HackathonID         uuid.UUID                    `json:"hackathon_id"`
	Mode                models.RegistrationMode      `json:"mode"`
	IndividualApplicant *IndividualApplicantResponse `json:"individual_applicant,omitempty"`
	TeamApplicant       *TeamApplicantResponse       `json:"team_applicant,omitempty"`
	RemainingCapacity   int                          `json:"remaining_capacity"`
}

// RegistrationStatusResponse reports whether and how a student is registered for a hackathon
type RegistrationStatusResponse struct {
	HackathonID        uuid.UUID                 `json:"hackathon_id"`
	StudentID          uuid.UUID                 `json:"student_id"`
	Registered         bool                      `json:"registered"`
	Source             models.RegistrationSource `json:"source,omitempty"`
	ApplicantID        *uuid.UUID                `json:"applicant_id,omitempty"`
	Status             models.ApplicantStatus    `json:"status,omitempty"`
	AssignedToTempTeam bool                      `json:"assigned_to_temp_team"`
	TemporaryTeamID    *uuid.UUID                `json:"temporary_team_id,omitempty"`
	OnRoster           bool                      `json:"on_roster"`
}

// Register runs one registration attempt for the actor. The attempt holds the hackathon's row
// lock for its whole duration and either fully commits or leaves no trace.
func (s *RegistrationService) Register(ctx context.Context, hackathonID uuid.UUID, actor auth.Actor, req *RegisterRequest) (*RegistrationResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	switch req.Mode {
	case models.RegistrationModeIndividual:
		return s.registerIndividual(ctx, hackathonID, actor, req)
	case models.RegistrationModeTeam:
		return s.registerTeam(ctx, hackathonID, actor, req.Team)
	}
	return nil, apperrors.NewValidationError("mode", "must be one of individual, team")
}

func (s *RegistrationService) registerIndividual(ctx context.Context, hackathonID uuid.UUID, actor auth.Actor, req *RegisterRequest) (*RegistrationResponse, error) {
	var applicant *models.IndividualApplicant
	var remaining int
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		hackathon, err := lockHackathon(ctx, repos, hackathonID)
		if err != nil {
			return err
		}
		if err := s.checker.Check(ctx, repos, hackathon, actor.ID); err != nil {
			return err
		}
		if err := s.capacity.Reserve(ctx, repos.Hackathons, hackathon, 1); err != nil {
			return err
		}

		applicant = &models.IndividualApplicant{
			HackathonID:  hackathon.ID,
			StudentID:    actor.ID,
			Skills:       req.Skills,
			Status:       models.ApplicantStatusPending,
			RegisteredAt: s.checker.Now(),
		}
		if err := repos.IndividualApplicants.Create(ctx, applicant); err != nil {
			return fmt.Errorf("failed to create individual applicant: %w", err)
		}
		remaining = hackathon.Registration.RemainingCapacity()
		return nil
	})
	if err != nil {
		s.logRejection(ctx, hackathonID, models.RegistrationModeIndividual, err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id": hackathonID.String(),
		"applicant_id": applicant.ID.String(),
		"remaining":    remaining,
	}).Info("Individual registration accepted")

	publishEvent(ctx, s.publisher, events.SubjectIndividualRegistered, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   applicant.ID,
		Status:      string(applicant.Status),
		Members:     []uuid.UUID{actor.ID},
		Slots:       1,
	})

	return &RegistrationResponse{
		HackathonID:         hackathonID,
		Mode:                models.RegistrationModeIndividual,
		IndividualApplicant: toIndividualApplicantResponse(applicant),
		RemainingCapacity:   remaining,
	}, nil
}

func (s *RegistrationService) registerTeam(ctx context.Context, hackathonID uuid.UUID, actor auth.Actor, team *TeamRegistration) (*RegistrationResponse, error) {
	var applicant *models.TeamApplicant
	var remaining int
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		hackathon, err := lockHackathon(ctx, repos, hackathonID)
		if err != nil {
			return err
		}

		size := hackathon.Registration.RequiredTeamSize
		members := distinctIDs(team.MemberIDs)
		if len(members) != len(team.MemberIDs) || len(members) != size {
			return apperrors.ErrTeamSizeMismatch
		}

		if err := s.checker.CheckWindow(hackathon); err != nil {
			return err
		}
		for _, studentID := range members {
			if err := s.checker.CheckNotRegistered(ctx, repos, hackathon.ID, studentID); err != nil {
				return err
			}
		}
		if err := s.capacity.Reserve(ctx, repos.Hackathons, hackathon, size); err != nil {
			return err
		}

		teamID := team.TeamID
		if teamID == uuid.Nil {
			teamID = uuid.New()
		}
		snapshot := make([]models.TeamApplicantMember, len(members))
		for i, id := range members {
			snapshot[i] = models.TeamApplicantMember{StudentID: id, HackathonID: hackathon.ID}
		}
		applicant = &models.TeamApplicant{
			HackathonID:  hackathon.ID,
			TeamID:       teamID,
			TeamName:     team.TeamName,
			Source:       models.RegistrationSourceTeam,
			Status:       models.ApplicantStatusPending,
			SlotCount:    size,
			RegisteredAt: s.checker.Now(),
			Members:      snapshot,
		}
		if err := repos.TeamApplicants.Create(ctx, applicant); err != nil {
			return fmt.Errorf("failed to create team applicant: %w", err)
		}
		remaining = hackathon.Registration.RemainingCapacity()
		return nil
	})
	if err != nil {
		s.logRejection(ctx, hackathonID, models.RegistrationModeTeam, err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id": hackathonID.String(),
		"applicant_id": applicant.ID.String(),
		"slots":        applicant.SlotCount,
		"remaining":    remaining,
	}).Info("Team registration accepted")

	publishEvent(ctx, s.publisher, events.SubjectTeamRegistered, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   applicant.ID,
		Status:      string(applicant.Status),
		Members:     applicant.MemberIDs(),
		Slots:       applicant.SlotCount,
	})

	return &RegistrationResponse{
		HackathonID:       hackathonID,
		Mode:              models.RegistrationModeTeam,
		TeamApplicant:     toTeamApplicantResponse(applicant),
		RemainingCapacity: remaining,
	}, nil
}

func (s *RegistrationService) logRejection(ctx context.Context, hackathonID uuid.UUID, mode models.RegistrationMode, err error) {
	reason := apperrors.RejectionReason(err)
	if reason == "" {
		return
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id": hackathonID.String(),
		"mode":         string(mode),
		"reason":       reason,
	}).Info("Registration rejected")
}

// GetRegistrationStatus looks the student up in every registration path of the hackathon
func (s *RegistrationService) GetRegistrationStatus(ctx context.Context, hackathonID, studentID uuid.UUID) (*RegistrationStatusResponse, error) {
	if _, err := s.repos.Hackathons.GetByID(ctx, hackathonID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrHackathonNotFound, "load hackathon")
	}

	var (
		individual *models.IndividualApplicant
		team       *models.TeamApplicant
		roster     *models.RegisteredStudent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.repos.IndividualApplicants.GetActiveByStudent(gctx, hackathonID, studentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load individual application: %w", err)
		}
		individual = a
		return nil
	})
	g.Go(func() error {
		a, err := s.repos.TeamApplicants.GetActiveByMember(gctx, hackathonID, studentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load team application: %w", err)
		}
		team = a
		return nil
	})
	g.Go(func() error {
		r, err := s.repos.RegisteredStudents.GetByStudent(gctx, hackathonID, studentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load roster entry: %w", err)
		}
		roster = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &RegistrationStatusResponse{
		HackathonID: hackathonID,
		StudentID:   studentID,
		OnRoster:    roster != nil,
	}
	switch {
	case individual != nil:
		resp.Registered = true
		resp.Source = models.RegistrationSourceIndividual
		resp.ApplicantID = &individual.ID
		resp.Status = individual.Status
		resp.AssignedToTempTeam = individual.AssignedToTempTeam
		resp.TemporaryTeamID = individual.TemporaryTeamID
	case team != nil:
		resp.Registered = true
		resp.Source = team.Source
		resp.ApplicantID = &team.ID
		resp.Status = team.Status
	case roster != nil:
		resp.Registered = true
		resp.Source = roster.Source
		resp.ApplicantID = &roster.SourceID
		resp.Status = models.ApplicantStatusApproved
	}
	return resp, nil
}
