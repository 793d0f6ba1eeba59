package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hackathon-registration-backend/internal/api/handlers"
	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/mocks"
	"hackathon-registration-backend/internal/service"
	"hackathon-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RegistrationHandlerTestSuite defines the test suite for RegistrationHandler
type RegistrationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRegistrationServiceInterface
	handler     *handlers.RegistrationHandler
	httpSuite   *testutils.HTTPTestSuite
	studentID   uuid.UUID
	token       string
}

// SetupTest sets up the test suite
func (suite *RegistrationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRegistrationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRegistrationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	authMiddleware := suite.httpSuite.AuthMiddleware()
	v1 := suite.httpSuite.Router.Group("/api/v1", authMiddleware.RequireAuth())
	v1.POST("/hackathons/:id/registrations", suite.handler.Register)
	v1.GET("/hackathons/:id/registrations/me", suite.handler.GetMyRegistration)
	v1.GET("/admin/hackathons/:id/registrations/:studentId", authMiddleware.RequireRole(auth.RoleAdmin), suite.handler.GetStudentRegistration)

	suite.studentID = uuid.New()
	suite.token = suite.httpSuite.TokenFor(suite.T(), suite.studentID, auth.RoleStudent)
}

// TearDownTest cleans up after each test
func (suite *RegistrationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RegistrationHandlerTestSuite) registerURL(id uuid.UUID) string {
	return fmt.Sprintf("/api/v1/hackathons/%s/registrations", id)
}

func (suite *RegistrationHandlerTestSuite) TestRegister_Individual() {
	hackathonID := uuid.New()
	expected := &service.RegistrationResponse{
		HackathonID:       hackathonID,
		Mode:              models.RegistrationModeIndividual,
		RemainingCapacity: 6,
		IndividualApplicant: &service.IndividualApplicantResponse{
			ID:        uuid.New(),
			StudentID: suite.studentID,
			Status:    models.ApplicantStatusPending,
			Skills:    []string{"go", "sql"},
		},
	}

	suite.mockService.EXPECT().
		Register(gomock.Any(), hackathonID, auth.Actor{ID: suite.studentID, Role: auth.RoleStudent}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ auth.Actor, req *service.RegisterRequest) (*service.RegistrationResponse, error) {
			suite.Equal(models.RegistrationModeIndividual, req.Mode)
			suite.Equal([]string{"go", "sql"}, req.Skills)
			return expected, nil
		})

	recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.registerURL(hackathonID), map[string]interface{}{
		"mode":   "individual",
		"skills": []string{"go", "sql"},
	}, suite.token)

	var response service.RegistrationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(6, response.RemainingCapacity)
	suite.Equal(suite.studentID, response.IndividualApplicant.StudentID)
}

func (suite *RegistrationHandlerTestSuite) TestRegister_TeamBody() {
	hackathonID := uuid.New()
	members := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	suite.mockService.EXPECT().
		Register(gomock.Any(), hackathonID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ auth.Actor, req *service.RegisterRequest) (*service.RegistrationResponse, error) {
			suite.Require().NotNil(req.Team)
			suite.Equal("Byte Club", req.Team.TeamName)
			suite.Equal(members, req.Team.MemberIDs)
			return &service.RegistrationResponse{HackathonID: hackathonID, Mode: models.RegistrationModeTeam}, nil
		})

	recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.registerURL(hackathonID), map[string]interface{}{
		"mode": "team",
		"team": map[string]interface{}{"team_name": "Byte Club", "member_ids": members},
	}, suite.token)

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *RegistrationHandlerTestSuite) TestRegister_Rejections() {
	testCases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrRegistrationClosed, http.StatusConflict},
		{apperrors.ErrCapacityFull, http.StatusConflict},
		{apperrors.ErrAlreadyRegistered, http.StatusConflict},
		{apperrors.ErrTeamSizeMismatch, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		suite.T().Run(apperrors.RejectionReason(tc.err), func(t *testing.T) {
			hackathonID := uuid.New()
			suite.mockService.EXPECT().Register(gomock.Any(), hackathonID, gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.registerURL(hackathonID), map[string]interface{}{"mode": "individual"}, suite.token)

			testutils.AssertRejection(t, recorder, tc.status, apperrors.RejectionReason(tc.err))
		})
	}
}

func (suite *RegistrationHandlerTestSuite) TestRegister_HackathonNotFound() {
	hackathonID := uuid.New()
	suite.mockService.EXPECT().Register(gomock.Any(), hackathonID, gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrHackathonNotFound)

	recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.registerURL(hackathonID), map[string]interface{}{"mode": "individual"}, suite.token)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "hackathon not found")
}

func (suite *RegistrationHandlerTestSuite) TestRegister_ValidationError() {
	hackathonID := uuid.New()
	suite.mockService.EXPECT().Register(gomock.Any(), hackathonID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("mode", "failed on the 'oneof' rule"))

	recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.registerURL(hackathonID), map[string]interface{}{"mode": "mentor"}, suite.token)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "mode")
}

func (suite *RegistrationHandlerTestSuite) TestRegister_StorageFailure() {
	hackathonID := uuid.New()
	suite.mockService.EXPECT().Register(gomock.Any(), hackathonID, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to reserve capacity: %w", assert.AnError))

	recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.registerURL(hackathonID), map[string]interface{}{"mode": "individual"}, suite.token)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "failed to reserve capacity")
}

func (suite *RegistrationHandlerTestSuite) TestRegister_BadInput() {
	suite.T().Run("invalid hackathon id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/hackathons/not-a-uuid/registrations", map[string]interface{}{"mode": "individual"}, suite.token)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid hackathon ID")
	})

	suite.T().Run("invalid json", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, suite.registerURL(uuid.New()), bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+suite.token)
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("missing token", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.registerURL(uuid.New()), map[string]interface{}{"mode": "individual"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func (suite *RegistrationHandlerTestSuite) TestGetMyRegistration() {
	hackathonID := uuid.New()
	suite.mockService.EXPECT().
		GetRegistrationStatus(gomock.Any(), hackathonID, suite.studentID).
		Return(&service.RegistrationStatusResponse{HackathonID: hackathonID, StudentID: suite.studentID}, nil)

	recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodGet, suite.registerURL(hackathonID)+"/me", nil, suite.token)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(false, response["registered"])
}

func (suite *RegistrationHandlerTestSuite) TestGetStudentRegistration() {
	hackathonID, studentID := uuid.New(), uuid.New()
	url := fmt.Sprintf("/api/v1/admin/hackathons/%s/registrations/%s", hackathonID, studentID)

	suite.T().Run("student is forbidden", func(t *testing.T) {
		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodGet, url, nil, suite.token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("admin", func(t *testing.T) {
		applicantID := uuid.New()
		suite.mockService.EXPECT().
			GetRegistrationStatus(gomock.Any(), hackathonID, studentID).
			Return(&service.RegistrationStatusResponse{
				HackathonID: hackathonID,
				StudentID:   studentID,
				Registered:  true,
				Source:      models.RegistrationSourceTeam,
				ApplicantID: &applicantID,
				Status:      models.ApplicantStatusApproved,
				OnRoster:    true,
			}, nil)

		adminToken := suite.httpSuite.TokenFor(t, uuid.New(), auth.RoleAdmin)
		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodGet, url, nil, adminToken)

		var response service.RegistrationStatusResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Registered)
		assert.Equal(t, models.RegistrationSourceTeam, response.Source)
	})

	suite.T().Run("invalid student id", func(t *testing.T) {
		adminToken := suite.httpSuite.TokenFor(t, uuid.New(), auth.RoleAdmin)
		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodGet, fmt.Sprintf("/api/v1/admin/hackathons/%s/registrations/nope", hackathonID), nil, adminToken)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid student ID")
	})
}

func TestRegistrationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}
