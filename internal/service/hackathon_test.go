package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/repository"
	"hackathon-registration-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HackathonServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *rosterMocks
	service *service.HackathonService
	ctx     context.Context
}

func (suite *HackathonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newRosterMocks(suite.ctrl)
	suite.service = service.NewHackathonService(suite.m.tx, suite.m.repos, suite.m.checker, suite.m.publisher, service.NewValidator(), 4)
	suite.ctx = context.Background()
}

func (suite *HackathonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HackathonServiceTestSuite) createRequest() *service.CreateHackathonRequest {
	return &service.CreateHackathonRequest{
		Name:             "Spring Hack",
		Mode:             models.HackathonModeOnline,
		Location:         "Berlin",
		StartDate:        fixedNow.Add(10 * 24 * time.Hour),
		EndDate:          fixedNow.Add(12 * 24 * time.Hour),
		LastRegisterDate: fixedNow.Add(5 * 24 * time.Hour),
		TotalCapacity:    40,
	}
}

func (suite *HackathonServiceTestSuite) TestCreateHackathon_Success() {
	actor := admin()
	req := suite.createRequest()

	suite.m.hackathons.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.Hackathon) error {
			suite.Equal("Online", h.Location)
			suite.Equal(4, h.Registration.RequiredTeamSize)
			suite.Equal(0, h.Registration.CurrentlyRegistered)
			suite.Equal(actor.ID, h.PostedBy)
			h.ID = uuid.New()
			return nil
		})

	resp, err := suite.service.CreateHackathon(suite.ctx, actor, req)

	suite.NoError(err)
	suite.Equal(40, resp.Capacity.TotalCapacity)
	suite.Equal(40, resp.Capacity.Remaining)
	suite.True(resp.RegistrationOpen)
}

func (suite *HackathonServiceTestSuite) TestCreateHackathon_ExplicitTeamSize() {
	req := suite.createRequest()
	req.Mode = models.HackathonModeOffline
	req.RequiredTeamSize = 3

	suite.m.hackathons.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.Hackathon) error {
			suite.Equal("Berlin", h.Location)
			suite.Equal(3, h.Registration.RequiredTeamSize)
			return nil
		})

	_, err := suite.service.CreateHackathon(suite.ctx, admin(), req)
	suite.NoError(err)
}

func (suite *HackathonServiceTestSuite) TestCreateHackathon_ValidationErrors() {
	testCases := []struct {
		name   string
		field  string
		mutate func(req *service.CreateHackathonRequest)
	}{
		{"missing name", "name", func(r *service.CreateHackathonRequest) { r.Name = "" }},
		{"unknown mode", "mode", func(r *service.CreateHackathonRequest) { r.Mode = "virtual" }},
		{"zero capacity", "total_capacity", func(r *service.CreateHackathonRequest) { r.TotalCapacity = 0 }},
		{"end before start", "end_date", func(r *service.CreateHackathonRequest) { r.EndDate = r.StartDate.Add(-time.Hour) }},
		{"deadline after end", "last_register_date", func(r *service.CreateHackathonRequest) { r.LastRegisterDate = r.EndDate.Add(time.Hour) }},
		{"team larger than capacity", "required_team_size", func(r *service.CreateHackathonRequest) { r.RequiredTeamSize = 41 }},
		{"negative prize pool", "prize_pool", func(r *service.CreateHackathonRequest) { r.PrizePool = -1 }},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.createRequest()
			tc.mutate(req)

			_, err := suite.service.CreateHackathon(suite.ctx, admin(), req)

			var validationErr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &validationErr))
			suite.Equal(tc.field, validationErr.Field)
		})
	}
}

func (suite *HackathonServiceTestSuite) TestGetHackathon() {
	h := openHackathon(10, 7, 4)
	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), h.ID).Return(h, nil)

	resp, err := suite.service.GetHackathon(suite.ctx, h.ID)

	suite.NoError(err)
	suite.Equal(h.ID, resp.ID)
	suite.Equal(3, resp.Capacity.Remaining)
	suite.Equal(h.LastRegisterDate.Format(time.RFC3339), resp.LastRegisterDate)
}

func (suite *HackathonServiceTestSuite) TestGetHackathon_NotFound() {
	id := uuid.New()
	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), id).Return(nil, errRecordNotFound)

	_, err := suite.service.GetHackathon(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrHackathonNotFound)
}

func (suite *HackathonServiceTestSuite) TestListHackathons_Pagination() {
	testCases := []struct {
		name                   string
		page, pageSize         int
		wantLimit, wantOffset  int
		wantPage, wantPageSize int
	}{
		{"defaults", 0, 0, 20, 0, 1, 20},
		{"third page", 3, 10, 10, 20, 3, 10},
		{"clamped size", 1, 500, 100, 0, 1, 100},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			hackathons := []models.Hackathon{*openHackathon(10, 0, 4), *openHackathon(5, 5, 4)}
			allHackathons := repository.HackathonFilter{When: models.TimeframeAll, Now: fixedNow}
			suite.m.hackathons.EXPECT().GetAll(gomock.Any(), allHackathons, tc.wantLimit, tc.wantOffset).Return(hackathons, int64(42), nil)

			resp, err := suite.service.ListHackathons(suite.ctx, tc.page, tc.pageSize, "")

			suite.NoError(err)
			suite.Len(resp.Hackathons, 2)
			suite.Equal(int64(42), resp.Total)
			suite.Equal(tc.wantPage, resp.Page)
			suite.Equal(tc.wantPageSize, resp.PageSize)
		})
	}
}

func (suite *HackathonServiceTestSuite) TestListHackathons_Timeframe() {
	past := repository.HackathonFilter{When: models.TimeframePast, Now: fixedNow}
	suite.m.hackathons.EXPECT().GetAll(gomock.Any(), past, 20, 0).Return(nil, int64(0), nil)

	resp, err := suite.service.ListHackathons(suite.ctx, 1, 20, models.TimeframePast)

	suite.NoError(err)
	suite.Empty(resp.Hackathons)
}

func (suite *HackathonServiceTestSuite) TestListHackathons_InvalidTimeframe() {
	_, err := suite.service.ListHackathons(suite.ctx, 1, 20, "ongoing")

	suite.True(apperrors.IsValidation(err))
}

func (suite *HackathonServiceTestSuite) TestListRegisteredHackathons() {
	studentID := uuid.New()
	first, second := openHackathon(20, 4, 4), openHackathon(10, 1, 4)
	upcoming := repository.HackathonFilter{When: models.TimeframeUpcoming, Now: fixedNow}

	suite.m.hackathons.EXPECT().ListByStudent(gomock.Any(), studentID, upcoming).
		Return([]models.Hackathon{*first, *second}, nil)

	resp, err := suite.service.ListRegisteredHackathons(suite.ctx, studentID, models.TimeframeUpcoming)

	suite.NoError(err)
	suite.Equal(studentID, resp.StudentID)
	suite.Equal(models.TimeframeUpcoming, resp.Timeframe)
	suite.Require().Len(resp.Hackathons, 2)
	suite.Equal(first.ID, resp.Hackathons[0].ID)
	suite.Equal(16, resp.Hackathons[0].Capacity.Remaining)
	suite.Equal(second.ID, resp.Hackathons[1].ID)
}

func (suite *HackathonServiceTestSuite) TestListRegisteredHackathons_DefaultsToAll() {
	studentID := uuid.New()
	all := repository.HackathonFilter{When: models.TimeframeAll, Now: fixedNow}
	suite.m.hackathons.EXPECT().ListByStudent(gomock.Any(), studentID, all).Return(nil, nil)

	resp, err := suite.service.ListRegisteredHackathons(suite.ctx, studentID, "")

	suite.NoError(err)
	suite.Equal(models.TimeframeAll, resp.Timeframe)
	suite.NotNil(resp.Hackathons)
	suite.Empty(resp.Hackathons)
}

func (suite *HackathonServiceTestSuite) TestListRegisteredHackathons_Errors() {
	_, err := suite.service.ListRegisteredHackathons(suite.ctx, uuid.New(), "yesterday")
	suite.True(apperrors.IsValidation(err))

	dbErr := errors.New("connection reset")
	suite.m.hackathons.EXPECT().ListByStudent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	_, err = suite.service.ListRegisteredHackathons(suite.ctx, uuid.New(), models.TimeframePast)
	suite.ErrorIs(err, dbErr)
}

func (suite *HackathonServiceTestSuite) TestUpdateCapacity_Success() {
	h := openHackathon(10, 7, 4)
	updated := *h
	updated.Registration.TotalCapacity = 15

	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), h.ID).Return(h, nil)
	suite.m.hackathons.EXPECT().UpdateTotalCapacity(gomock.Any(), h.ID, 15).Return(true, nil)
	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), h.ID).Return(&updated, nil)
	suite.m.publisher.EXPECT().Publish(gomock.Any(), events.SubjectHackathonCapacityChange, gomock.Any()).Return(nil)

	resp, err := suite.service.UpdateCapacity(suite.ctx, h.ID, admin(), &service.UpdateCapacityRequest{TotalCapacity: 15})

	suite.NoError(err)
	suite.Equal(15, resp.Capacity.TotalCapacity)
	suite.Equal(8, resp.Capacity.Remaining)
}

func (suite *HackathonServiceTestSuite) TestUpdateCapacity_BelowRegistered() {
	h := openHackathon(10, 7, 4)

	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), h.ID).Return(h, nil).Times(2)
	suite.m.hackathons.EXPECT().UpdateTotalCapacity(gomock.Any(), h.ID, 5).Return(false, nil)

	_, err := suite.service.UpdateCapacity(suite.ctx, h.ID, admin(), &service.UpdateCapacityRequest{TotalCapacity: 5})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "7 students")
}

func (suite *HackathonServiceTestSuite) TestUpdateCapacity_ReportsCountAfterRejectedUpdate() {
	before := openHackathon(10, 3, 4)
	after := *before
	after.Registration.CurrentlyRegistered = 6

	gomock.InOrder(
		suite.m.hackathons.EXPECT().GetByID(gomock.Any(), before.ID).Return(before, nil),
		suite.m.hackathons.EXPECT().UpdateTotalCapacity(gomock.Any(), before.ID, 5).Return(false, nil),
		suite.m.hackathons.EXPECT().GetByID(gomock.Any(), before.ID).Return(&after, nil),
	)

	_, err := suite.service.UpdateCapacity(suite.ctx, before.ID, admin(), &service.UpdateCapacityRequest{TotalCapacity: 5})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "6 students")
	suite.NotContains(err.Error(), "3 students")
}

func (suite *HackathonServiceTestSuite) TestGetRosterSnapshot() {
	h := openHackathon(20, 9, 4)
	assigned := pendingIndividual(h.ID)
	assigned.AssignedToTempTeam = true
	rejected := pendingIndividual(h.ID)
	rejected.Status = models.ApplicantStatusRejected
	individuals := []models.IndividualApplicant{*pendingIndividual(h.ID), *pendingIndividual(h.ID), *assigned, *rejected}
	team := pendingTeam(h.ID, 4)

	suite.m.expectSnapshot()
	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), h.ID).Return(h, nil)
	suite.m.individuals.EXPECT().ListByHackathon(gomock.Any(), h.ID).Return(individuals, nil)
	suite.m.teams.EXPECT().ListByHackathon(gomock.Any(), h.ID).Return([]models.TeamApplicant{*team}, nil)
	suite.m.tempTeams.EXPECT().ListByHackathon(gomock.Any(), h.ID).Return(nil, nil)
	suite.m.registered.EXPECT().ListByHackathon(gomock.Any(), h.ID).Return([]models.RegisteredStudent{
		{HackathonID: h.ID, StudentID: uuid.New(), Source: models.RegistrationSourceIndividual, SourceID: uuid.New(), RegisteredAt: fixedNow},
	}, nil)

	resp, err := suite.service.GetRosterSnapshot(suite.ctx, h.ID)

	suite.NoError(err)
	suite.Equal(11, resp.Capacity.Remaining)
	suite.Len(resp.IndividualApplicants, 4)
	suite.Equal(2, resp.UnassignedPoolSize)
	suite.Len(resp.TeamApplicants, 1)
	suite.Empty(resp.TemporaryTeams)
	suite.Len(resp.RegisteredStudents, 1)
}

func (suite *HackathonServiceTestSuite) TestGetRosterSnapshot_StorageError() {
	h := openHackathon(20, 9, 4)
	dbErr := errors.New("timeout")

	suite.m.expectSnapshot()
	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), h.ID).Return(h, nil)
	suite.m.individuals.EXPECT().ListByHackathon(gomock.Any(), h.ID).Return(nil, dbErr)

	_, err := suite.service.GetRosterSnapshot(suite.ctx, h.ID)

	suite.ErrorIs(err, dbErr)
}

func (suite *HackathonServiceTestSuite) TestGetRosterSnapshot_NotFound() {
	id := uuid.New()

	suite.m.expectSnapshot()
	suite.m.hackathons.EXPECT().GetByID(gomock.Any(), id).Return(nil, errRecordNotFound)

	_, err := suite.service.GetRosterSnapshot(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrHackathonNotFound)
}

func (suite *HackathonServiceTestSuite) TestGetRosterSnapshot_ReadsOnlyThroughSnapshot() {
	txErr := errors.New("could not serialize access")

	// Without the callback running, the pool-bound repositories must stay untouched
	suite.m.tx.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).Return(txErr)

	_, err := suite.service.GetRosterSnapshot(suite.ctx, uuid.New())

	suite.ErrorIs(err, txErr)
}

func TestHackathonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HackathonServiceTestSuite))
}
