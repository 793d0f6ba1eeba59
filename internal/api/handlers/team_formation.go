package handlers

import (
	"net/http"

	"hackathon-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamFormationHandler handles HTTP requests for temporary teams
type TeamFormationHandler struct {
	teamFormationService service.TeamFormationServiceInterface
}

// NewTeamFormationHandler creates a new team formation handler
func NewTeamFormationHandler(teamFormationService service.TeamFormationServiceInterface) *TeamFormationHandler {
	return &TeamFormationHandler{
		teamFormationService: teamFormationService,
	}
}

// FormTemporaryTeam handles POST /admin/hackathons/:id/temporary-teams
// @Summary Form a temporary team
// @Description Group exactly the required number of unassigned individual applicants into a temporary team
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param team body service.FormTemporaryTeamRequest true "Team members, leader and name"
// @Success 201 {object} service.TemporaryTeamResponse "Temporary team formed"
// @Failure 400 {object} ErrorResponse "Invalid member count, leader or team name"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 409 {object} ErrorResponse "A member is unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/temporary-teams [post]
func (h *TeamFormationHandler) FormTemporaryTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	var req service.FormTemporaryTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.teamFormationService.FormTemporaryTeam(c.Request.Context(), hackathonID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// DissolveTemporaryTeam handles DELETE /admin/hackathons/:id/temporary-teams/:teamId
// @Summary Dissolve a temporary team
// @Description Return the members of a temporary team to the unassigned pool and delete the team
// @Tags admin
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param teamId path string true "Temporary team ID (UUID)"
// @Success 204 "Temporary team dissolved"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Hackathon or temporary team not found"
// @Failure 409 {object} ErrorResponse "Team already converted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/temporary-teams/{teamId} [delete]
func (h *TeamFormationHandler) DissolveTemporaryTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "teamId", "temporary team")
	if !ok {
		return
	}

	if err := h.teamFormationService.DissolveTemporaryTeam(c.Request.Context(), hackathonID, teamID, actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ConvertTemporaryTeam handles POST /admin/hackathons/:id/temporary-teams/:teamId/convert
// @Summary Convert a temporary team
// @Description Turn a temporary team into an approved team applicant and add its members to the roster
// @Tags admin
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param teamId path string true "Temporary team ID (UUID)"
// @Success 201 {object} service.TeamApplicantResponse "Team applicant created"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Hackathon or temporary team not found"
// @Failure 409 {object} ErrorResponse "Team already converted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/temporary-teams/{teamId}/convert [post]
func (h *TeamFormationHandler) ConvertTemporaryTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "teamId", "temporary team")
	if !ok {
		return
	}

	resp, err := h.teamFormationService.ConvertTemporaryTeam(c.Request.Context(), hackathonID, teamID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
