package handlers

import (
	"net/http"

	"hackathon-registration-backend/internal/auth"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string `json:"error" example:"hackathon has no remaining capacity"`
	Reason string `json:"reason,omitempty" example:"CapacityFull"`
}

// rejectionStatus maps each rejection reason to its HTTP status
var rejectionStatus = map[string]int{
	apperrors.ReasonRegistrationClosed:      http.StatusConflict,
	apperrors.ReasonCapacityFull:            http.StatusConflict,
	apperrors.ReasonAlreadyRegistered:       http.StatusConflict,
	apperrors.ReasonMemberUnavailable:       http.StatusConflict,
	apperrors.ReasonInvalidStatusTransition: http.StatusConflict,
	apperrors.ReasonTeamAlreadyConverted:    http.StatusConflict,
	apperrors.ReasonTeamSizeMismatch:        http.StatusBadRequest,
	apperrors.ReasonInvalidMemberCount:      http.StatusBadRequest,
	apperrors.ReasonLeaderNotInTeam:         http.StatusBadRequest,
	apperrors.ReasonMissingTeamName:         http.StatusBadRequest,
}

// respondError writes the JSON error body and status for err
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsRejection(err):
		reason := apperrors.RejectionReason(err)
		status, ok := rejectionStatus[reason]
		if !ok {
			status = http.StatusConflict
		}
		c.JSON(status, ErrorResponse{Error: err.Error(), Reason: reason})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.Request.URL.Path).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// parseID reads a UUID path parameter; a malformed value is answered with 400
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body; a malformed body is answered with 400
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// requireActor returns the authenticated actor; without one the request is answered with 401
func requireActor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		respondError(c, apperrors.ErrMissingActor)
		return auth.Actor{}, false
	}
	return actor, true
}
