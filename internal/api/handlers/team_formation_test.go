package handlers_test

import (
	"fmt"
	"net/http"
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

// TeamFormationHandlerTestSuite defines the test suite for TeamFormationHandler
type TeamFormationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamFormationServiceInterface
	handler     *handlers.TeamFormationHandler
	httpSuite   *testutils.HTTPTestSuite
	adminID     uuid.UUID
	token       string
	hackathonID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamFormationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamFormationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamFormationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	authMiddleware := suite.httpSuite.AuthMiddleware()
	admin := suite.httpSuite.Router.Group("/api/v1/admin", authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleAdmin))
	admin.POST("/hackathons/:id/temporary-teams", suite.handler.FormTemporaryTeam)
	admin.DELETE("/hackathons/:id/temporary-teams/:teamId", suite.handler.DissolveTemporaryTeam)
	admin.POST("/hackathons/:id/temporary-teams/:teamId/convert", suite.handler.ConvertTemporaryTeam)

	suite.adminID = uuid.New()
	suite.token = suite.httpSuite.TokenFor(suite.T(), suite.adminID, auth.RoleAdmin)
	suite.hackathonID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TeamFormationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamFormationHandlerTestSuite) teamsURL() string {
	return fmt.Sprintf("/api/v1/admin/hackathons/%s/temporary-teams", suite.hackathonID)
}

func (suite *TeamFormationHandlerTestSuite) TestFormTemporaryTeam() {
	members := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	body := map[string]interface{}{
		"team_name":  "Team Phoenix",
		"member_ids": members,
		"leader_id":  members[1],
	}

	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().
			FormTemporaryTeam(gomock.Any(), suite.hackathonID, auth.Actor{ID: suite.adminID, Role: auth.RoleAdmin}, &service.FormTemporaryTeamRequest{
				TeamName:  "Team Phoenix",
				MemberIDs: members,
				LeaderID:  members[1],
			}).
			Return(&service.TemporaryTeamResponse{ID: teamID, TeamName: "Team Phoenix", LeaderID: members[1]}, nil)

		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.teamsURL(), body, suite.token)

		var response service.TemporaryTeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, teamID, response.ID)
	})

	rejections := []struct {
		err    error
		status int
	}{
		{apperrors.ErrInvalidMemberCount, http.StatusBadRequest},
		{apperrors.ErrLeaderNotInTeam, http.StatusBadRequest},
		{apperrors.ErrMissingTeamName, http.StatusBadRequest},
		{apperrors.ErrMemberUnavailable, http.StatusConflict},
	}
	for _, tc := range rejections {
		suite.T().Run(apperrors.RejectionReason(tc.err), func(t *testing.T) {
			suite.mockService.EXPECT().FormTemporaryTeam(gomock.Any(), suite.hackathonID, gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, suite.teamsURL(), body, suite.token)
			testutils.AssertRejection(t, recorder, tc.status, apperrors.RejectionReason(tc.err))
		})
	}
}

func (suite *TeamFormationHandlerTestSuite) TestDissolveTemporaryTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().DissolveTemporaryTeam(gomock.Any(), suite.hackathonID, teamID, gomock.Any()).Return(nil)

		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodDelete, fmt.Sprintf("%s/%s", suite.teamsURL(), teamID), nil, suite.token)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().DissolveTemporaryTeam(gomock.Any(), suite.hackathonID, teamID, gomock.Any()).Return(apperrors.ErrTemporaryTeamNotFound)

		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodDelete, fmt.Sprintf("%s/%s", suite.teamsURL(), teamID), nil, suite.token)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "temporary team not found")
	})

	suite.T().Run("Invalid team ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodDelete, suite.teamsURL()+"/abc", nil, suite.token)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid temporary team ID")
	})
}

func (suite *TeamFormationHandlerTestSuite) TestConvertTemporaryTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().ConvertTemporaryTeam(gomock.Any(), suite.hackathonID, teamID, gomock.Any()).
			Return(&service.TeamApplicantResponse{
				ID:              uuid.New(),
				Source:          models.RegistrationSourceTemporaryTeam,
				TemporaryTeamID: &teamID,
				Status:          models.ApplicantStatusApproved,
				SlotCount:       4,
			}, nil)

		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, fmt.Sprintf("%s/%s/convert", suite.teamsURL(), teamID), nil, suite.token)

		var response service.TeamApplicantResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.ApplicantStatusApproved, response.Status)
	})

	suite.T().Run("Already converted", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().ConvertTemporaryTeam(gomock.Any(), suite.hackathonID, teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamAlreadyConverted)

		recorder := suite.httpSuite.MakeAuthenticatedRequest(http.MethodPost, fmt.Sprintf("%s/%s/convert", suite.teamsURL(), teamID), nil, suite.token)
		testutils.AssertRejection(t, recorder, http.StatusConflict, apperrors.ReasonTeamAlreadyConverted)
	})
}

func TestTeamFormationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamFormationHandlerTestSuite))
}
