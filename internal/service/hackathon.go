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

// HackathonService handles business logic for the hackathon catalog and its roster
type HackathonService struct {
	tx              repository.TransactorInterface
	repos           *repository.Repositories
	checker         *EligibilityChecker
	publisher       events.Publisher
	validator       *validator.Validate
	defaultTeamSize int
}

// NewHackathonService creates a new hackathon service
func NewHackathonService(tx repository.TransactorInterface, repos *repository.Repositories, checker *EligibilityChecker, publisher events.Publisher, validator *validator.Validate, defaultTeamSize int) *HackathonService {
	return &HackathonService{
		tx:              tx,
		repos:           repos,
		checker:         checker,
		publisher:       publisher,
		validator:       validator,
		defaultTeamSize: defaultTeamSize,
	}
}

// CreateHackathonRequest represents the request to create a hackathon
type CreateHackathonRequest struct {
	Name                    string               `json:"name" validate:"required,min=1,max=200"`
	Description             string               `json:"description"`
	Mode                    models.HackathonMode `json:"mode" validate:"required,oneof=online offline hybrid"`
	Location                string               `json:"location" validate:"max=200"`
	PrimaryDomain           string               `json:"primary_domain" validate:"max=200"`
	PrimaryProblemStatement string               `json:"primary_problem_statement"`
	PrizePool               int64                `json:"prize_pool" validate:"gte=0"`
	StartDate               time.Time            `json:"start_date" validate:"required"`
	EndDate                 time.Time            `json:"end_date" validate:"required,gtefield=StartDate"`
	LastRegisterDate        time.Time            `json:"last_register_date" validate:"required,ltefield=EndDate"`
	TotalCapacity           int                  `json:"total_capacity" validate:"required,gt=0"`
	RequiredTeamSize        int                  `json:"required_team_size" validate:"omitempty,gt=0,ltefield=TotalCapacity"`
}

// UpdateCapacityRequest represents the request to change a hackathon's total capacity
type UpdateCapacityRequest struct {
	TotalCapacity int `json:"total_capacity" validate:"required,gt=0"`
}

// HackathonResponse represents a hackathon with its capacity counters
type HackathonResponse struct {
	ID                      uuid.UUID            `json:"id"`
	Name                    string               `json:"name"`
	Description             string               `json:"description"`
	Mode                    models.HackathonMode `json:"mode"`
	Location                string               `json:"location"`
	PrimaryDomain           string               `json:"primary_domain"`
	PrimaryProblemStatement string               `json:"primary_problem_statement"`
	PrizePool               int64                `json:"prize_pool"`
	StartDate               string               `json:"start_date"`
	EndDate                 string               `json:"end_date"`
	LastRegisterDate        string               `json:"last_register_date"`
	PostedBy                uuid.UUID            `json:"posted_by"`
	Capacity                CapacityResponse     `json:"capacity"`
	RegistrationOpen        bool                 `json:"registration_open"`
	CreatedAt               string               `json:"created_at"`
	UpdatedAt               string               `json:"updated_at"`
}

// CapacityResponse represents the capacity counters of a hackathon
type CapacityResponse struct {
	TotalCapacity       int `json:"total_capacity"`
	CurrentlyRegistered int `json:"currently_registered"`
	Remaining           int `json:"remaining"`
	RequiredTeamSize    int `json:"required_team_size"`
}

// HackathonListResponse represents a paginated list of hackathons
type HackathonListResponse struct {
	Hackathons []HackathonResponse `json:"hackathons"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// StudentHackathonsResponse represents the hackathons a student is registered for
type StudentHackathonsResponse struct {
	StudentID  uuid.UUID           `json:"student_id"`
	Timeframe  models.Timeframe    `json:"timeframe"`
	Hackathons []HackathonResponse `json:"hackathons"`
}

// RegisteredStudentResponse represents a registered roster entry
type RegisteredStudentResponse struct {
	StudentID    uuid.UUID                 `json:"student_id"`
	Source       models.RegistrationSource `json:"source"`
	SourceID     uuid.UUID                 `json:"source_id"`
	RegisteredAt string                    `json:"registered_at"`
}

// RosterSnapshotResponse represents the complete roster of a hackathon
type RosterSnapshotResponse struct {
	HackathonID          uuid.UUID                     `json:"hackathon_id"`
	Capacity             CapacityResponse              `json:"capacity"`
	IndividualApplicants []IndividualApplicantResponse `json:"individual_applicants"`
	UnassignedPoolSize   int                           `json:"unassigned_pool_size"`
	TeamApplicants       []TeamApplicantResponse       `json:"team_applicants"`
	TemporaryTeams       []TemporaryTeamResponse       `json:"temporary_teams"`
	RegisteredStudents   []RegisteredStudentResponse   `json:"registered_students"`
}

// CreateHackathon creates a new hackathon posted by the actor
func (s *HackathonService) CreateHackathon(ctx context.Context, actor auth.Actor, req *CreateHackathonRequest) (*HackathonResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	teamSize := req.RequiredTeamSize
	if teamSize == 0 {
		teamSize = s.defaultTeamSize
	}
	location := req.Location
	if req.Mode == models.HackathonModeOnline {
		location = "Online"
	}

	hackathon := &models.Hackathon{
		Name:                    req.Name,
		Description:             req.Description,
		Mode:                    req.Mode,
		Location:                location,
		PrimaryDomain:           req.PrimaryDomain,
		PrimaryProblemStatement: req.PrimaryProblemStatement,
		PrizePool:               req.PrizePool,
		StartDate:               req.StartDate.UTC(),
		EndDate:                 req.EndDate.UTC(),
		LastRegisterDate:        req.LastRegisterDate.UTC(),
		PostedBy:                actor.ID,
		Registration: models.Registration{
			TotalCapacity:       req.TotalCapacity,
			CurrentlyRegistered: 0,
			RequiredTeamSize:    teamSize,
		},
	}
	if err := s.repos.Hackathons.Create(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"hackathon_id":   hackathon.ID.String(),
		"total_capacity": req.TotalCapacity,
		"team_size":      teamSize,
	}).Info("Hackathon created")

	return s.toResponse(hackathon), nil
}

// GetHackathon retrieves a hackathon by ID
func (s *HackathonService) GetHackathon(ctx context.Context, id uuid.UUID) (*HackathonResponse, error) {
	hackathon, err := s.repos.Hackathons.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}
	return s.toResponse(hackathon), nil
}

// ListHackathons retrieves hackathons in the timeframe with pagination
func (s *HackathonService) ListHackathons(ctx context.Context, page, pageSize int, when models.Timeframe) (*HackathonListResponse, error) {
	filter, err := s.filterFor(when)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	hackathons, total, err := s.repos.Hackathons.GetAll(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	responses := make([]HackathonResponse, len(hackathons))
	for i := range hackathons {
		responses[i] = *s.toResponse(&hackathons[i])
	}

	return &HackathonListResponse{
		Hackathons: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// ListRegisteredHackathons retrieves the hackathons in the timeframe the student has registered for,
// individually, with a team, or through a temporary team
func (s *HackathonService) ListRegisteredHackathons(ctx context.Context, studentID uuid.UUID, when models.Timeframe) (*StudentHackathonsResponse, error) {
	filter, err := s.filterFor(when)
	if err != nil {
		return nil, err
	}

	hackathons, err := s.repos.Hackathons.ListByStudent(ctx, studentID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered hackathons: %w", err)
	}

	resp := &StudentHackathonsResponse{
		StudentID:  studentID,
		Timeframe:  filter.When,
		Hackathons: make([]HackathonResponse, len(hackathons)),
	}
	for i := range hackathons {
		resp.Hackathons[i] = *s.toResponse(&hackathons[i])
	}
	return resp, nil
}

// filterFor builds the listing filter at the current time; an empty timeframe means all
func (s *HackathonService) filterFor(when models.Timeframe) (repository.HackathonFilter, error) {
	if when == "" {
		when = models.TimeframeAll
	}
	if !when.IsValid() {
		return repository.HackathonFilter{}, apperrors.NewValidationError("when", "must be one of all, upcoming, past")
	}
	return repository.HackathonFilter{When: when, Now: s.checker.Now()}, nil
}

// UpdateCapacity changes the total capacity; it may never drop below the current registrations
func (s *HackathonService) UpdateCapacity(ctx context.Context, id uuid.UUID, actor auth.Actor, req *UpdateCapacityRequest) (*HackathonResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.repos.Hackathons.GetByID(ctx, id); err != nil {
		return nil, notFoundOr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	ok, err := s.repos.Hackathons.UpdateTotalCapacity(ctx, id, req.TotalCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to update capacity: %w", err)
	}
	if !ok {
		// Registrations may have landed since the first read
		current, err := s.repos.Hackathons.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrHackathonNotFound, "get hackathon")
		}
		return nil, apperrors.NewValidationError("total_capacity",
			fmt.Sprintf("cannot be lower than the %d students already registered", current.Registration.CurrentlyRegistered))
	}

	updated, err := s.repos.Hackathons.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	publishEvent(ctx, s.publisher, events.SubjectHackathonCapacityChange, events.Event{
		HackathonID: id,
		ActorID:     actor.ID,
		SubjectID:   id,
		Slots:       updated.Registration.TotalCapacity,
	})

	return s.toResponse(updated), nil
}

// GetRosterSnapshot loads the counters and every roster collection of a hackathon from one
// read-only transaction, so the lists and the registered count agree with each other
func (s *HackathonService) GetRosterSnapshot(ctx context.Context, id uuid.UUID) (*RosterSnapshotResponse, error) {
	var (
		hackathon   *models.Hackathon
		individuals []models.IndividualApplicant
		teams       []models.TeamApplicant
		tempTeams   []models.TemporaryTeam
		registered  []models.RegisteredStudent
	)
	err := s.tx.WithinSnapshot(ctx, func(repos *repository.Repositories) error {
		var err error
		hackathon, err = repos.Hackathons.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, apperrors.ErrHackathonNotFound, "get hackathon")
		}
		if individuals, err = repos.IndividualApplicants.ListByHackathon(ctx, id); err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		if teams, err = repos.TeamApplicants.ListByHackathon(ctx, id); err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		if tempTeams, err = repos.TemporaryTeams.ListByHackathon(ctx, id); err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		if registered, err = repos.RegisteredStudents.ListByHackathon(ctx, id); err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshot := &RosterSnapshotResponse{
		HackathonID:          id,
		Capacity:             toCapacityResponse(hackathon.Registration),
		IndividualApplicants: make([]IndividualApplicantResponse, len(individuals)),
		TeamApplicants:       make([]TeamApplicantResponse, len(teams)),
		TemporaryTeams:       make([]TemporaryTeamResponse, len(tempTeams)),
		RegisteredStudents:   make([]RegisteredStudentResponse, len(registered)),
	}
	for i := range individuals {
		snapshot.IndividualApplicants[i] = *toIndividualApplicantResponse(&individuals[i])
		if individuals[i].IsAvailableForTeam() {
			snapshot.UnassignedPoolSize++
		}
	}
	for i := range teams {
		snapshot.TeamApplicants[i] = *toTeamApplicantResponse(&teams[i])
	}
	for i := range tempTeams {
		snapshot.TemporaryTeams[i] = *toTemporaryTeamResponse(&tempTeams[i])
	}
	for i, r := range registered {
		snapshot.RegisteredStudents[i] = RegisteredStudentResponse{
			StudentID:    r.StudentID,
			Source:       r.Source,
			SourceID:     r.SourceID,
			RegisteredAt: r.RegisteredAt.UTC().Format(time.RFC3339),
		}
	}
	return snapshot, nil
}

func toCapacityResponse(r models.Registration) CapacityResponse {
	return CapacityResponse{
		TotalCapacity:       r.TotalCapacity,
		CurrentlyRegistered: r.CurrentlyRegistered,
		Remaining:           r.RemainingCapacity(),
		RequiredTeamSize:    r.RequiredTeamSize,
	}
}

func (s *HackathonService) toResponse(h *models.Hackathon) *HackathonResponse {
	return &HackathonResponse{
		ID:                      h.ID,
		Name:                    h.Name,
		Description:             h.Description,
		Mode:                    h.Mode,
		Location:                h.Location,
		PrimaryDomain:           h.PrimaryDomain,
		PrimaryProblemStatement: h.PrimaryProblemStatement,
		PrizePool:               h.PrizePool,
		StartDate:               h.StartDate.UTC().Format(time.RFC3339),
		EndDate:                 h.EndDate.UTC().Format(time.RFC3339),
		LastRegisterDate:        h.LastRegisterDate.UTC().Format(time.RFC3339),
		PostedBy:                h.PostedBy,
		Capacity:                toCapacityResponse(h.Registration),
		RegistrationOpen:        h.IsRegistrationOpen(s.checker.Now()),
		CreatedAt:               h.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:               h.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
