package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/logger"
	"hackathon-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamFormationService groups unassigned individual applicants into temporary teams
type TeamFormationService struct {
	tx        repository.TransactorInterface
	checker   *EligibilityChecker
	publisher events.Publisher
	validator *validator.Validate
}

// NewTeamFormationService creates a new team formation service
func NewTeamFormationService(tx repository.TransactorInterface, checker *EligibilityChecker, publisher events.Publisher, validator *validator.Validate) *TeamFormationService {
	return &TeamFormationService{
		tx:        tx,
		checker:   checker,
		publisher: publisher,
		validator: validator,
	}
}

// FormTemporaryTeamRequest represents the request to form a temporary team.
// MemberIDs and LeaderID are student ids.
type FormTemporaryTeamRequest struct {
	TeamName  string      `json:"team_name" validate:"max=100"`
	MemberIDs []uuid.UUID `json:"member_ids"`
	LeaderID  uuid.UUID   `json:"leader_id"`
}

// TemporaryTeamMemberResponse represents one member of a temporary team
type TemporaryTeamMemberResponse struct {
	IndividualApplicantID uuid.UUID `json:"individual_applicant_id"`
	StudentID             uuid.UUID `json:"student_id"`
}

// TemporaryTeamResponse represents a temporary team
type TemporaryTeamResponse struct {
	ID                       uuid.UUID                     `json:"id"`
	HackathonID              uuid.UUID                     `json:"hackathon_id"`
	TeamName                 string                        `json:"team_name"`
	LeaderID                 uuid.UUID                     `json:"leader_id"`
	Members                  []TemporaryTeamMemberResponse `json:"members"`
	FormedAt                 string                        `json:"formed_at"`
	FormedBy                 uuid.UUID                     `json:"formed_by"`
	ConvertedTeamApplicantID *uuid.UUID                    `json:"converted_team_applicant_id,omitempty"`
}

// FormTemporaryTeam creates a temporary team from exactly the required number of unassigned
// individual applicants. A rejected attempt changes nothing. Capacity is untouched because every
// member already holds a slot.
func (s *TeamFormationService) FormTemporaryTeam(ctx context.Context, hackathonID uuid.UUID, actor auth.Actor, req *FormTemporaryTeamRequest) (*TemporaryTeamResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var team *models.TemporaryTeam
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		hackathon, err := lockHackathon(ctx, repos, hackathonID)
		if err != nil {
			return err
		}

		memberIDs := distinctIDs(req.MemberIDs)
		if len(memberIDs) != len(req.MemberIDs) || len(memberIDs) != hackathon.Registration.RequiredTeamSize {
			return apperrors.ErrInvalidMemberCount
		}

		applicants, err := repos.IndividualApplicants.GetByStudentIDs(ctx, hackathon.ID, memberIDs)
		if err != nil {
			return fmt.Errorf("failed to load individual applicants: %w", err)
		}
		if len(applicants) != len(memberIDs) {
			return apperrors.ErrMemberUnavailable
		}
		for i := range applicants {
			if !applicants[i].IsAvailableForTeam() {
				return apperrors.ErrMemberUnavailable
			}
		}

		if !containsID(memberIDs, req.LeaderID) {
			return apperrors.ErrLeaderNotInTeam
		}
		name := strings.TrimSpace(req.TeamName)
		if name == "" {
			return apperrors.ErrMissingTeamName
		}

		now := s.checker.Now()
		members := make([]models.TemporaryTeamMember, len(applicants))
		applicantIDs := make([]uuid.UUID, len(applicants))
		for i, a := range applicants {
			members[i] = models.TemporaryTeamMember{IndividualApplicantID: a.ID, StudentID: a.StudentID}
			applicantIDs[i] = a.ID
		}
		team = &models.TemporaryTeam{
			HackathonID: hackathon.ID,
			TeamName:    name,
			LeaderID:    req.LeaderID,
			FormedAt:    now,
			FormedBy:    actor.ID,
			Members:     members,
		}
		if err := repos.TemporaryTeams.Create(ctx, team); err != nil {
			return fmt.Errorf("failed to create temporary team: %w", err)
		}

		assigned, err := repos.IndividualApplicants.AssignToTemporaryTeam(ctx, applicantIDs, team.ID)
		if err != nil {
			return fmt.Errorf("failed to assign members: %w", err)
		}
		if assigned != int64(len(applicantIDs)) {
			return apperrors.ErrMemberUnavailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id":      hackathonID.String(),
		"temporary_team_id": team.ID.String(),
		"members":           len(team.Members),
	}).Info("Temporary team formed")

	publishEvent(ctx, s.publisher, events.SubjectTemporaryTeamFormed, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   team.ID,
		Members:     team.MemberIDs(),
	})

	return toTemporaryTeamResponse(team), nil
}

// DissolveTemporaryTeam returns the members of a temporary team to the unassigned pool and
// deletes the team. Capacity is untouched.
func (s *TeamFormationService) DissolveTemporaryTeam(ctx context.Context, hackathonID, teamID uuid.UUID, actor auth.Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	var members []uuid.UUID
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if _, err := lockHackathon(ctx, repos, hackathonID); err != nil {
			return err
		}

		team, err := repos.TemporaryTeams.GetByID(ctx, hackathonID, teamID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrTemporaryTeamNotFound, "load temporary team")
		}
		if team.IsConverted() {
			return apperrors.ErrTeamAlreadyConverted
		}

		if _, err := repos.IndividualApplicants.ReleaseFromTemporaryTeam(ctx, team.ID); err != nil {
			return fmt.Errorf("failed to release members: %w", err)
		}
		if err := repos.TemporaryTeams.Delete(ctx, team.ID); err != nil {
			return notFoundOr(err, apperrors.ErrTemporaryTeamNotFound, "delete temporary team")
		}
		members = team.MemberIDs()
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id":      hackathonID.String(),
		"temporary_team_id": teamID.String(),
	}).Info("Temporary team dissolved")

	publishEvent(ctx, s.publisher, events.SubjectTemporaryTeamDissolved, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   teamID,
		Members:     members,
	})
	return nil
}

// ConvertTemporaryTeam turns a temporary team into an approved team applicant and puts its members
// on the registered roster. The members keep the slots they reserved as individuals.
func (s *TeamFormationService) ConvertTemporaryTeam(ctx context.Context, hackathonID, teamID uuid.UUID, actor auth.Actor) (*TeamApplicantResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	var applicant *models.TeamApplicant
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if _, err := lockHackathon(ctx, repos, hackathonID); err != nil {
			return err
		}

		team, err := repos.TemporaryTeams.GetByID(ctx, hackathonID, teamID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrTemporaryTeamNotFound, "load temporary team")
		}
		if team.IsConverted() {
			return apperrors.ErrTeamAlreadyConverted
		}

		now := s.checker.Now()
		memberIDs := team.MemberIDs()
		snapshot := make([]models.TeamApplicantMember, len(memberIDs))
		for i, id := range memberIDs {
			snapshot[i] = models.TeamApplicantMember{StudentID: id, HackathonID: hackathonID}
		}
		reviewer := actor.ID
		applicant = &models.TeamApplicant{
			HackathonID:     hackathonID,
			TeamID:          team.ID,
			TeamName:        team.TeamName,
			Source:          models.RegistrationSourceTemporaryTeam,
			TemporaryTeamID: &team.ID,
			Status:          models.ApplicantStatusApproved,
			SlotCount:       len(memberIDs),
			RegisteredAt:    now,
			ReviewedAt:      &now,
			ReviewedBy:      &reviewer,
			Members:         snapshot,
		}
		if err := repos.TeamApplicants.Create(ctx, applicant); err != nil {
			return fmt.Errorf("failed to create team applicant: %w", err)
		}

		entries := rosterEntries(hackathonID, models.RegistrationSourceTemporaryTeam, applicant.ID, memberIDs, now)
		if err := repos.RegisteredStudents.AddMany(ctx, entries); err != nil {
			return fmt.Errorf("failed to add registered students: %w", err)
		}

		if err := repos.TemporaryTeams.MarkConverted(ctx, team.ID, applicant.ID); err != nil {
			return notFoundOr(err, apperrors.ErrTeamAlreadyConverted, "mark temporary team converted")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id":      hackathonID.String(),
		"temporary_team_id": teamID.String(),
		"team_applicant_id": applicant.ID.String(),
	}).Info("Temporary team converted")

	publishEvent(ctx, s.publisher, events.SubjectTemporaryTeamConverted, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   applicant.ID,
		Status:      string(applicant.Status),
		Members:     applicant.MemberIDs(),
	})

	return toTeamApplicantResponse(applicant), nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func toTemporaryTeamResponse(t *models.TemporaryTeam) *TemporaryTeamResponse {
	members := make([]TemporaryTeamMemberResponse, len(t.Members))
	for i, m := range t.Members {
		members[i] = TemporaryTeamMemberResponse{
			IndividualApplicantID: m.IndividualApplicantID,
			StudentID:             m.StudentID,
		}
	}
	return &TemporaryTeamResponse{
		ID:                       t.ID,
		HackathonID:              t.HackathonID,
		TeamName:                 t.TeamName,
		LeaderID:                 t.LeaderID,
		Members:                  members,
		FormedAt:                 t.FormedAt.UTC().Format(time.RFC3339),
		FormedBy:                 t.FormedBy,
		ConvertedTeamApplicantID: t.ConvertedTeamApplicantID,
	}
}
