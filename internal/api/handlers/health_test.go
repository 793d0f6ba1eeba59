//go:build integration
// +build integration

package handlers_test

import (
	"net/http"
	"os"
	"testing"

	"hackathon-registration-backend/internal/api/handlers"
	"hackathon-registration-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

type fakeBroker struct{ connected bool }

func (b fakeBroker) IsConnected() bool { return b.connected }

// HealthHandlerTestSuite checks health endpoints against the shared Postgres container
type HealthHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
}

func (suite *HealthHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

func (suite *HealthHandlerTestSuite) router(broker handlers.ConnectionChecker) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	h := handlers.NewHealthHandler(suite.baseTestSuite.DB, broker)
	httpSuite.Router.GET("/health", h.Health)
	httpSuite.Router.GET("/health/ready", h.Ready)
	httpSuite.Router.GET("/health/live", h.Live)
	return httpSuite
}

func (suite *HealthHandlerTestSuite) TestHealth() {
	testCases := []struct {
		name   string
		broker handlers.ConnectionChecker
		events string
	}{
		{"events disabled", nil, "disabled"},
		{"broker connected", fakeBroker{connected: true}, "healthy"},
		{"broker disconnected", fakeBroker{connected: false}, "disconnected"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			recorder := suite.router(tc.broker).MakeRequest(http.MethodGet, "/health", nil)

			var response handlers.HealthResponse
			testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
			suite.Equal("healthy", response.Status)
			suite.Equal(handlers.Version, response.Version)
			suite.Equal("healthy", response.Services["database"])
			suite.Equal(tc.events, response.Services["events"])
		})
	}
}

func (suite *HealthHandlerTestSuite) TestReadyAndLive() {
	httpSuite := suite.router(nil)

	var ready gin.H
	testutils.AssertJSONResponse(suite.T(), httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &ready)
	suite.Equal(true, ready["ready"])

	var live gin.H
	testutils.AssertJSONResponse(suite.T(), httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
	suite.Equal(true, live["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
