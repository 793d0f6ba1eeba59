package handlers

import (
	"net/http"

	"hackathon-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicantHandler handles review decisions on team and individual applicants
type ApplicantHandler struct {
	reviewService service.ApplicantReviewServiceInterface
}

// NewApplicantHandler creates a new applicant handler
func NewApplicantHandler(reviewService service.ApplicantReviewServiceInterface) *ApplicantHandler {
	return &ApplicantHandler{
		reviewService: reviewService,
	}
}

// SetTeamApplicantStatus handles PUT /admin/hackathons/:id/team-applicants/:applicantId/status
// @Summary Review a team applicant
// @Description Approve or reject a pending team applicant; rejection returns its slots to the hackathon
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param applicantId path string true "Team applicant ID (UUID)"
// @Param decision body service.SetStatusRequest true "Review decision"
// @Success 200 {object} service.TeamApplicantResponse "Team applicant reviewed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hackathon or team applicant not found"
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/team-applicants/{applicantId}/status [put]
func (h *ApplicantHandler) SetTeamApplicantStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	applicantID, ok := parseID(c, "applicantId", "applicant")
	if !ok {
		return
	}
	var req service.SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.SetTeamApplicantStatus(c.Request.Context(), hackathonID, applicantID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetIndividualApplicantStatus handles PUT /admin/hackathons/:id/individual-applicants/:applicantId/status
// @Summary Review an individual applicant
// @Description Approve or reject a pending individual applicant; rejection returns the slot to the hackathon
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param applicantId path string true "Individual applicant ID (UUID)"
// @Param decision body service.SetStatusRequest true "Review decision"
// @Success 200 {object} service.IndividualApplicantResponse "Individual applicant reviewed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hackathon or individual applicant not found"
// @Failure 409 {object} ErrorResponse "Invalid status transition or applicant grouped into a temporary team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/individual-applicants/{applicantId}/status [put]
func (h *ApplicantHandler) SetIndividualApplicantStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	applicantID, ok := parseID(c, "applicantId", "applicant")
	if !ok {
		return
	}
	var req service.SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.SetIndividualApplicantStatus(c.Request.Context(), hackathonID, applicantID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
