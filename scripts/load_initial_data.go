package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/config"
	"hackathon-registration-backend/internal/database"
	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/repository"
	"hackathon-registration-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// seedAdminID posts every seeded hackathon
var seedAdminID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

// Dates are relative to the load time so seeded hackathons are open for registration
type HackathonData struct {
	Name                     string             `yaml:"name"`
	Description              string             `yaml:"description"`
	Mode                     string             `yaml:"mode"`
	Location                 string             `yaml:"location,omitempty"`
	PrimaryDomain            string             `yaml:"primary_domain,omitempty"`
	PrimaryProblemStatement  string             `yaml:"primary_problem_statement,omitempty"`
	PrizePool                int64              `yaml:"prize_pool,omitempty"`
	TotalCapacity            int                `yaml:"total_capacity"`
	RequiredTeamSize         int                `yaml:"required_team_size,omitempty"`
	RegistrationClosesInDays int                `yaml:"registration_closes_in_days"`
	StartsInDays             int                `yaml:"starts_in_days"`
	DurationDays             int                `yaml:"duration_days"`
	Registrations            []RegistrationData `yaml:"registrations,omitempty"`
}

type RegistrationData struct {
	StudentID string    `yaml:"student_id"`
	Skills    []string  `yaml:"skills,omitempty"`
	Team      *TeamData `yaml:"team,omitempty"`
}

type TeamData struct {
	TeamName  string   `yaml:"team_name"`
	MemberIDs []string `yaml:"member_ids"`
}

type HackathonsFile struct {
	Hackathons []HackathonData `yaml:"hackathons"`
}

type seeder struct {
	db            *gorm.DB
	hackathons    *service.HackathonService
	registrations *service.RegistrationService
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db)
	validator := service.NewValidator()
	checker := service.NewEligibilityChecker(nil)
	publisher := events.NoopPublisher{}

	s := &seeder{
		db:            db,
		hackathons:    service.NewHackathonService(transactor, repos, checker, publisher, validator, cfg.DefaultTeamSize),
		registrations: service.NewRegistrationService(transactor, repos, checker, service.NewCapacityGuard(), publisher, validator),
	}

	if err := s.loadDataFromYAMLFiles(context.Background(), "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func (s *seeder) loadDataFromYAMLFiles(ctx context.Context, dataDir string) error {
	hackathons, err := loadHackathons(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load hackathons: %w", err)
	}

	created, registered, skipped := 0, 0, 0
	for _, data := range hackathons {
		hackathonID, isNew, err := s.createHackathon(ctx, data)
		if err != nil {
			return fmt.Errorf("failed to create hackathon %s: %w", data.Name, err)
		}
		if isNew {
			created++
		}

		for _, reg := range data.Registrations {
			ok, err := s.register(ctx, hackathonID, reg)
			if err != nil {
				return fmt.Errorf("failed to register student %s for %s: %w", reg.StudentID, data.Name, err)
			}
			if ok {
				registered++
			} else {
				skipped++
			}
		}
	}

	log.Printf("📋 Hackathons: %d created, %d total", created, len(hackathons))
	log.Printf("🧑‍💻 Registrations: %d accepted, %d skipped", registered, skipped)
	return nil
}

func loadHackathons(dataDir string) ([]HackathonData, error) {
	var all []HackathonData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "hackathons") {
			var file HackathonsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Hackathons...)
		}
		return nil
	})

	return all, err
}

// createHackathon returns the id of the hackathon with the given name, creating it when missing
func (s *seeder) createHackathon(ctx context.Context, data HackathonData) (uuid.UUID, bool, error) {
	var existing models.Hackathon
	err := s.db.WithContext(ctx).Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("failed to query hackathon: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, data.StartsInDays).Add(9 * time.Hour)
	resp, err := s.hackathons.CreateHackathon(ctx, auth.Actor{ID: seedAdminID, Role: auth.RoleAdmin}, &service.CreateHackathonRequest{
		Name:                    data.Name,
		Description:             data.Description,
		Mode:                    models.HackathonMode(data.Mode),
		Location:                data.Location,
		PrimaryDomain:           data.PrimaryDomain,
		PrimaryProblemStatement: data.PrimaryProblemStatement,
		PrizePool:               data.PrizePool,
		StartDate:               start,
		EndDate:                 start.AddDate(0, 0, data.DurationDays),
		LastRegisterDate:        today.AddDate(0, 0, data.RegistrationClosesInDays).Add(24*time.Hour - time.Second),
		TotalCapacity:           data.TotalCapacity,
		RequiredTeamSize:        data.RequiredTeamSize,
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return resp.ID, true, nil
}

// register submits one seeded registration; a rejection (e.g. already registered on a rerun) is skipped
func (s *seeder) register(ctx context.Context, hackathonID uuid.UUID, data RegistrationData) (bool, error) {
	studentID, err := uuid.Parse(data.StudentID)
	if err != nil {
		return false, fmt.Errorf("invalid student_id: %w", err)
	}

	req := &service.RegisterRequest{
		Mode:   models.RegistrationModeIndividual,
		Skills: data.Skills,
	}
	if data.Team != nil {
		memberIDs := make([]uuid.UUID, 0, len(data.Team.MemberIDs))
		for _, raw := range data.Team.MemberIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return false, fmt.Errorf("invalid member id %q: %w", raw, err)
			}
			memberIDs = append(memberIDs, id)
		}
		req.Mode = models.RegistrationModeTeam
		req.Skills = nil
		req.Team = &service.TeamRegistration{
			TeamID:    uuid.NewSHA1(hackathonID, []byte(data.Team.TeamName)),
			TeamName:  data.Team.TeamName,
			MemberIDs: memberIDs,
		}
	}

	_, err = s.registrations.Register(ctx, hackathonID, auth.Actor{ID: studentID, Role: auth.RoleStudent}, req)
	if apperrors.IsRejection(err) {
		log.Printf("Skipping registration of %s: %s", studentID, apperrors.RejectionReason(err))
		return false, nil
	}
	return err == nil, err
}
