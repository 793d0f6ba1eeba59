package service

import (
	"context"
	"fmt"
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

// ApplicantReviewService moves individual and team applicants through their review states
type ApplicantReviewService struct {
	tx        repository.TransactorInterface
	capacity  *CapacityGuard
	checker   *EligibilityChecker
	publisher events.Publisher
	validator *validator.Validate
}

// NewApplicantReviewService creates a new applicant review service
func NewApplicantReviewService(tx repository.TransactorInterface, capacity *CapacityGuard, checker *EligibilityChecker, publisher events.Publisher, validator *validator.Validate) *ApplicantReviewService {
	return &ApplicantReviewService{
		tx:        tx,
		capacity:  capacity,
		checker:   checker,
		publisher: publisher,
		validator: validator,
	}
}

// SetStatusRequest represents a review decision
type SetStatusRequest struct {
	Status   models.ApplicantStatus `json:"status" validate:"required"`
	Feedback string                 `json:"feedback,omitempty" validate:"max=2000"`
}

// IndividualApplicantResponse represents an individual applicant
type IndividualApplicantResponse struct {
	ID                 uuid.UUID              `json:"id"`
	HackathonID        uuid.UUID              `json:"hackathon_id"`
	StudentID          uuid.UUID              `json:"student_id"`
	Skills             []string               `json:"skills"`
	Status             models.ApplicantStatus `json:"status"`
	AssignedToTempTeam bool                   `json:"assigned_to_temp_team"`
	TemporaryTeamID    *uuid.UUID             `json:"temporary_team_id,omitempty"`
	Feedback           string                 `json:"feedback,omitempty"`
	RegisteredAt       string                 `json:"registered_at"`
	ReviewedAt         string                 `json:"reviewed_at,omitempty"`
}

// TeamApplicantResponse represents a team applicant and its member snapshot
type TeamApplicantResponse struct {
	ID              uuid.UUID                 `json:"id"`
	HackathonID     uuid.UUID                 `json:"hackathon_id"`
	TeamID          uuid.UUID                 `json:"team_id"`
	TeamName        string                    `json:"team_name"`
	Source          models.RegistrationSource `json:"source"`
	TemporaryTeamID *uuid.UUID                `json:"temporary_team_id,omitempty"`
	Status          models.ApplicantStatus    `json:"status"`
	SlotCount       int                       `json:"slot_count"`
	MemberIDs       []uuid.UUID               `json:"member_ids"`
	Feedback        string                    `json:"feedback,omitempty"`
	RegisteredAt    string                    `json:"registered_at"`
	ReviewedAt      string                    `json:"reviewed_at,omitempty"`
}

// SetTeamApplicantStatus applies a review decision to a team applicant. Rejection returns the
// team's slots to the hackathon; approval adds its members to the registered roster.
func (s *ApplicantReviewService) SetTeamApplicantStatus(ctx context.Context, hackathonID, applicantID uuid.UUID, actor auth.Actor, req *SetStatusRequest) (*TeamApplicantResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validateDecision(req); err != nil {
		return nil, err
	}

	var updated *models.TeamApplicant
	var releasedSlots int
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		hackathon, err := lockHackathon(ctx, repos, hackathonID)
		if err != nil {
			return err
		}

		applicant, err := repos.TeamApplicants.GetByID(ctx, hackathonID, applicantID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrTeamApplicantNotFound, "load team applicant")
		}
		if !applicant.Status.CanTransitionTo(req.Status) {
			return apperrors.ErrInvalidStatusTransition
		}

		review := s.review(actor, req)
		ok, err := repos.TeamApplicants.UpdateStatus(ctx, applicant.ID, applicant.Status, req.Status, review)
		if err != nil {
			return notFoundOr(err, apperrors.ErrTeamApplicantNotFound, "update team applicant status")
		}
		if !ok {
			return apperrors.ErrInvalidStatusTransition
		}

		switch req.Status {
		case models.ApplicantStatusRejected:
			if err := s.capacity.Release(ctx, repos.Hackathons, hackathon, applicant.SlotCount); err != nil {
				return err
			}
			releasedSlots = applicant.SlotCount
		case models.ApplicantStatusApproved:
			entries := rosterEntries(hackathonID, applicant.Source, applicant.ID, applicant.MemberIDs(), review.ReviewedAt)
			if err := repos.RegisteredStudents.AddMany(ctx, entries); err != nil {
				return fmt.Errorf("failed to add registered students: %w", err)
			}
		}

		applicant.Status = req.Status
		applicant.Feedback = review.Feedback
		applicant.ReviewedAt = &review.ReviewedAt
		applicant.ReviewedBy = &review.ReviewedBy
		updated = applicant
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id":      hackathonID.String(),
		"team_applicant_id": applicantID.String(),
		"status":            string(req.Status),
		"released_slots":    releasedSlots,
	}).Info("Team applicant reviewed")

	publishEvent(ctx, s.publisher, events.SubjectApplicantReviewed, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   applicantID,
		Status:      string(req.Status),
		Members:     updated.MemberIDs(),
		Slots:       releasedSlots,
	})

	return toTeamApplicantResponse(updated), nil
}

// SetIndividualApplicantStatus applies a review decision to an individual applicant. Rejection
// returns the slot and frees the student to apply again; approval adds the student to the roster.
func (s *ApplicantReviewService) SetIndividualApplicantStatus(ctx context.Context, hackathonID, applicantID uuid.UUID, actor auth.Actor, req *SetStatusRequest) (*IndividualApplicantResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validateDecision(req); err != nil {
		return nil, err
	}

	var updated *models.IndividualApplicant
	var releasedSlots int
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		hackathon, err := lockHackathon(ctx, repos, hackathonID)
		if err != nil {
			return err
		}

		applicant, err := repos.IndividualApplicants.GetByID(ctx, hackathonID, applicantID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIndividualApplicantNotFound, "load individual applicant")
		}
		if !applicant.Status.CanTransitionTo(req.Status) {
			return apperrors.ErrInvalidStatusTransition
		}
		// A grouped applicant leaves its temporary team only through dissolution
		if req.Status == models.ApplicantStatusRejected && applicant.AssignedToTempTeam {
			return apperrors.ErrMemberUnavailable
		}

		review := s.review(actor, req)
		ok, err := repos.IndividualApplicants.UpdateStatus(ctx, applicant.ID, applicant.Status, req.Status, review)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIndividualApplicantNotFound, "update individual applicant status")
		}
		if !ok {
			return apperrors.ErrInvalidStatusTransition
		}

		switch req.Status {
		case models.ApplicantStatusRejected:
			if err := s.capacity.Release(ctx, repos.Hackathons, hackathon, 1); err != nil {
				return err
			}
			releasedSlots = 1
		case models.ApplicantStatusApproved:
			entries := rosterEntries(hackathonID, models.RegistrationSourceIndividual, applicant.ID, []uuid.UUID{applicant.StudentID}, review.ReviewedAt)
			if err := repos.RegisteredStudents.AddMany(ctx, entries); err != nil {
				return fmt.Errorf("failed to add registered student: %w", err)
			}
		}

		applicant.Status = req.Status
		applicant.Feedback = review.Feedback
		applicant.ReviewedAt = &review.ReviewedAt
		applicant.ReviewedBy = &review.ReviewedBy
		updated = applicant
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id":            hackathonID.String(),
		"individual_applicant_id": applicantID.String(),
		"status":                  string(req.Status),
		"released_slots":          releasedSlots,
	}).Info("Individual applicant reviewed")

	publishEvent(ctx, s.publisher, events.SubjectApplicantReviewed, events.Event{
		HackathonID: hackathonID,
		ActorID:     actor.ID,
		SubjectID:   applicantID,
		Status:      string(req.Status),
		Members:     []uuid.UUID{updated.StudentID},
		Slots:       releasedSlots,
	})

	return toIndividualApplicantResponse(updated), nil
}

func (s *ApplicantReviewService) validateDecision(req *SetStatusRequest) error {
	if err := validate(s.validator, req); err != nil {
		return err
	}
	if !req.Status.IsValid() {
		return apperrors.NewValidationError("status", "must be one of pending, approved, rejected")
	}
	return nil
}

func (s *ApplicantReviewService) review(actor auth.Actor, req *SetStatusRequest) repository.Review {
	return repository.Review{
		Feedback:   req.Feedback,
		ReviewedBy: actor.ID,
		ReviewedAt: s.checker.Now(),
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toIndividualApplicantResponse(a *models.IndividualApplicant) *IndividualApplicantResponse {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	return &IndividualApplicantResponse{
		ID:                 a.ID,
		HackathonID:        a.HackathonID,
		StudentID:          a.StudentID,
		Skills:             skills,
		Status:             a.Status,
		AssignedToTempTeam: a.AssignedToTempTeam,
		TemporaryTeamID:    a.TemporaryTeamID,
		Feedback:           a.Feedback,
		RegisteredAt:       a.RegisteredAt.UTC().Format(time.RFC3339),
		ReviewedAt:         formatOptionalTime(a.ReviewedAt),
	}
}

func toTeamApplicantResponse(a *models.TeamApplicant) *TeamApplicantResponse {
	return &TeamApplicantResponse{
		ID:              a.ID,
		HackathonID:     a.HackathonID,
		TeamID:          a.TeamID,
		TeamName:        a.TeamName,
		Source:          a.Source,
		TemporaryTeamID: a.TemporaryTeamID,
		Status:          a.Status,
		SlotCount:       a.SlotCount,
		MemberIDs:       a.MemberIDs(),
		Feedback:        a.Feedback,
		RegisteredAt:    a.RegisteredAt.UTC().Format(time.RFC3339),
		ReviewedAt:      formatOptionalTime(a.ReviewedAt),
	}
}
