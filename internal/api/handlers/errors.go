package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "valo-platform-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// businessErrors are rule violations that read as bad requests, not server faults.
var businessErrors = []error{
	apperrors.ErrInvalidStatus,
	apperrors.ErrInvalidTimeRange,
	apperrors.ErrTargetDateInPast,
	apperrors.ErrInvalidPaginationParams,
	apperrors.ErrInvalidInviteCode,
	apperrors.ErrOwnerCannotLeave,
	apperrors.ErrMatchHasNoPlayers,
	apperrors.ErrEmptyScoreboard,
	apperrors.ErrRosterNotInMatch,
}

// respondError translates service errors into HTTP responses. Handlers check
// endpoint specific sentinels first and fall back to this for everything else.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err) || errors.Is(err, apperrors.ErrScheduleConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err) || errors.Is(err, apperrors.ErrNotTeamMember):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsExternalService(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isBadRequest(err error) bool {
	if apperrors.IsValidation(err) {
		return true
	}
	for _, sentinel := range businessErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	// Struct validation errors come back wrapped from the validator
	return strings.Contains(err.Error(), "validation failed") || strings.HasPrefix(err.Error(), "invalid ")
}
