package handlers

import (
	"net/http"
	"strconv"

	"hackathon-registration-backend/internal/database/models"
	"hackathon-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HackathonHandler handles HTTP requests for the hackathon catalog
type HackathonHandler struct {
	hackathonService service.HackathonServiceInterface
}

// NewHackathonHandler creates a new hackathon handler
func NewHackathonHandler(hackathonService service.HackathonServiceInterface) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: hackathonService,
	}
}

// ListHackathons handles GET /hackathons
// @Summary List hackathons
// @Description Get hackathons with pagination, most recent registration deadline first
// @Tags hackathons
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param when query string false "Timeframe filter" Enums(all, upcoming, past) default(all)
// @Success 200 {object} service.HackathonListResponse "Successfully retrieved hackathons"
// @Failure 400 {object} ErrorResponse "Invalid pagination or timeframe parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /hackathons [get]
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page_size parameter"})
		return
	}

	resp, err := h.hackathonService.ListHackathons(c.Request.Context(), page, pageSize, models.Timeframe(c.Query("when")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMyHackathons handles GET /hackathons/registered/me
// @Summary List own registered hackathons
// @Description Get the hackathons the authenticated student is registered for, ordered by start date
// @Tags hackathons
// @Accept json
// @Produce json
// @Param when query string false "Timeframe filter" Enums(all, upcoming, past) default(all)
// @Success 200 {object} service.StudentHackathonsResponse "Registered hackathons"
// @Failure 400 {object} ErrorResponse "Invalid timeframe"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /hackathons/registered/me [get]
func (h *HackathonHandler) ListMyHackathons(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	resp, err := h.hackathonService.ListRegisteredHackathons(c.Request.Context(), actor.ID, models.Timeframe(c.Query("when")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetHackathon handles GET /hackathons/:id
// @Summary Get hackathon by ID
// @Description Get a hackathon with its capacity counters
// @Tags hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {object} service.HackathonResponse "Successfully retrieved hackathon"
// @Failure 400 {object} ErrorResponse "Invalid hackathon ID"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /hackathons/{id} [get]
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	id, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}

	resp, err := h.hackathonService.GetHackathon(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateHackathon handles POST /admin/hackathons
// @Summary Create a hackathon
// @Description Create a hackathon posted by the authenticated administrator
// @Tags admin
// @Accept json
// @Produce json
// @Param hackathon body service.CreateHackathonRequest true "Hackathon data"
// @Success 201 {object} service.HackathonResponse "Successfully created hackathon"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons [post]
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreateHackathonRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.hackathonService.CreateHackathon(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateCapacity handles PATCH /admin/hackathons/:id/capacity
// @Summary Update hackathon capacity
// @Description Change the total capacity; it may not drop below the students already registered
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param capacity body service.UpdateCapacityRequest true "New capacity"
// @Success 200 {object} service.HackathonResponse "Successfully updated capacity"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/capacity [patch]
func (h *HackathonHandler) UpdateCapacity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}
	var req service.UpdateCapacityRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.hackathonService.UpdateCapacity(c.Request.Context(), id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRoster handles GET /admin/hackathons/:id/roster
// @Summary Get roster snapshot
// @Description Get capacity counters, applicants, temporary teams and registered students of a hackathon
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {object} service.RosterSnapshotResponse "Successfully retrieved roster"
// @Failure 400 {object} ErrorResponse "Invalid hackathon ID"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/hackathons/{id}/roster [get]
func (h *HackathonHandler) GetRoster(c *gin.Context) {
	id, ok := parseID(c, "id", "hackathon")
	if !ok {
		return
	}

	resp, err := h.hackathonService.GetRosterSnapshot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
