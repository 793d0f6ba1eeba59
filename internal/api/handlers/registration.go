package handlers

import (
	"net/http"

	"hackathon-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for student registration
type RegistrationHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Register handles POST /hackathons/:id/registrations
// @Summary Register for a hackathon
// @Description Register the authenticated student individually, or a pre-formed team whose size matches the hackathon's team size
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param registration body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.RegistrationResponse "Registration accepted"
// @Failure 400 {object} ErrorResponse "Invalid request or team size mismatch"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 409 {object} ErrorResponse "Registration closed, capacity full or already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /hackathons/{id}/registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.registrationService.Register(c.Request.Context(), hackathonID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMyRegistration handles GET /hackathons/:id/registrations/me
// @Summary Get own registration status
// @Description Report whether and how the authenticated student is registered for the hackathon
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {object} service.RegistrationStatusResponse "Registration status"
// @Failure 400 {object} ErrorResponse "Invalid hackathon ID"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /hackathons/{id}/registrations/me [get]
func (h *RegistrationHandler) GetMyRegistration(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}

	resp, err := h.registrationService.GetRegistrationStatus(c.Request.Context(), hackathonID, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStudentRegistration handles GET /admin/hackathons/:id/registrations/:studentId
// @Summary Get a student's registration status
// @Description Report whether and how a student is registered for the hackathon
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param studentId path string true "Student ID (UUID)"
// @Success 200 {object} service.RegistrationStatusResponse "Registration status"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/registrations/{studentId} [get]
func (h *RegistrationHandler) GetStudentRegistration(c *gin.Context) {
	hackathonID, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	studentID, ok := parseID(c, "studentId", "student")
	if !ok {
		return
	}

	resp, err := h.registrationService.GetRegistrationStatus(c.Request.Context(), hackathonID, studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
