package service_test

import (
	"context"
	"time"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"
	"hackathon-registration-backend/internal/mocks"
	"hackathon-registration-backend/internal/repository"
	"hackathon-registration-backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var (
	fixedNow          = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	errRecordNotFound = gorm.ErrRecordNotFound
)

// rosterMocks wires mocked repositories behind a transactor that runs units of work inline
type rosterMocks struct {
	ctrl        *gomock.Controller
	tx          *mocks.MockTransactorInterface
	hackathons  *mocks.MockHackathonRepositoryInterface
	individuals *mocks.MockIndividualApplicantRepositoryInterface
	teams       *mocks.MockTeamApplicantRepositoryInterface
	tempTeams   *mocks.MockTemporaryTeamRepositoryInterface
	registered  *mocks.MockRegisteredStudentRepositoryInterface
	publisher   *mocks.MockPublisher
	repos       *repository.Repositories
	checker     *service.EligibilityChecker
}

func newRosterMocks(ctrl *gomock.Controller) *rosterMocks {
	m := &rosterMocks{
		ctrl:        ctrl,
		tx:          mocks.NewMockTransactorInterface(ctrl),
		hackathons:  mocks.NewMockHackathonRepositoryInterface(ctrl),
		individuals: mocks.NewMockIndividualApplicantRepositoryInterface(ctrl),
		teams:       mocks.NewMockTeamApplicantRepositoryInterface(ctrl),
		tempTeams:   mocks.NewMockTemporaryTeamRepositoryInterface(ctrl),
		registered:  mocks.NewMockRegisteredStudentRepositoryInterface(ctrl),
		publisher:   mocks.NewMockPublisher(ctrl),
		checker:     service.NewEligibilityChecker(func() time.Time { return fixedNow }),
	}
	m.repos = &repository.Repositories{
		Hackathons:           m.hackathons,
		IndividualApplicants: m.individuals,
		TeamApplicants:       m.teams,
		TemporaryTeams:       m.tempTeams,
		RegisteredStudents:   m.registered,
	}
	m.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*repository.Repositories) error) error {
			return fn(m.repos)
		}).
		AnyTimes()
	return m
}

// expectSnapshot runs one read-only unit of work inline against the mocked repositories
func (m *rosterMocks) expectSnapshot() {
	m.tx.EXPECT().
		WithinSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*repository.Repositories) error) error {
			return fn(m.repos)
		})
}

// expectNotRegistered makes the duplicate-registration lookups find nothing for the student
func (m *rosterMocks) expectNotRegistered(hackathonID, studentID uuid.UUID) {
	m.registered.EXPECT().GetByStudent(gomock.Any(), hackathonID, studentID).Return(nil, errRecordNotFound)
	m.individuals.EXPECT().GetActiveByStudent(gomock.Any(), hackathonID, studentID).Return(nil, errRecordNotFound)
	m.teams.EXPECT().GetActiveByMember(gomock.Any(), hackathonID, studentID).Return(nil, errRecordNotFound)
}

func openHackathon(total, registered, teamSize int) *models.Hackathon {
	return &models.Hackathon{
		BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: fixedNow, UpdatedAt: fixedNow},
		Name:             "Spring Hack",
		Mode:             models.HackathonModeOnline,
		Location:         "Online",
		StartDate:        fixedNow.Add(10 * 24 * time.Hour),
		EndDate:          fixedNow.Add(12 * 24 * time.Hour),
		LastRegisterDate: fixedNow.Add(5 * 24 * time.Hour),
		PostedBy:         uuid.New(),
		Registration: models.Registration{
			TotalCapacity:       total,
			CurrentlyRegistered: registered,
			RequiredTeamSize:    teamSize,
		},
	}
}

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func student() auth.Actor {
	return auth.Actor{ID: uuid.New(), Role: auth.RoleStudent}
}

func admin() auth.Actor {
	return auth.Actor{ID: uuid.New(), Role: auth.RoleAdmin}
}
