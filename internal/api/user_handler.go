package api

import (
	"errors"
	"net/http"

	"studentfit/fitness-planner/internal/domain"
	"studentfit/fitness-planner/internal/repository"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the persisted-record surface: point lookup and
// whole-document upsert, keyed by the opaque client-generated id.
type UserHandler struct {
	records repository.UserRecordRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(records repository.UserRecordRepository) *UserHandler {
	return &UserHandler{records: records}
}

// UpsertUserRequest is the full current state the client always sends.
// Missing profile/plan default to zero values, missing progress to [].
type UpsertUserRequest struct {
	Profile     domain.Profile          `json:"profile"`
	CurrentPlan domain.Plan             `json:"current_plan"`
	Progress    []domain.ProgressMetric `json:"progress"`
}

// GetUser handles GET /api/user/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	record, err := h.records.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load user record.")
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpsertUser handles POST /api/user/:id. The entire record is replaced;
// there is no field-level merge.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	id := c.Param("id")

	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Progress == nil {
		req.Progress = []domain.ProgressMetric{}
	}

	record := &domain.UserRecord{
		ID:          id,
		Profile:     req.Profile,
		CurrentPlan: req.CurrentPlan,
		Progress:    req.Progress,
	}

	if err := h.records.Upsert(c.Request.Context(), record); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save user record.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
