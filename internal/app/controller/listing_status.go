package controller

import (
	"errors"
	"strconv"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/gin-gonic/gin"
)

var errStatusMismatch = errors.New("status and is_active disagree")

// ListingStatusRequest is the moderation body for businesses and
// advertisements. Both fields are carried for API compatibility, but the
// pairing must agree with the derived flag; mismatches are rejected instead
// of trusting either field.
type ListingStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// Resolve validates the status value and the status/is_active pairing.
func (r *ListingStatusRequest) Resolve() (model.ListingStatus, error) {
	status, err := model.ParseListingStatus(r.Status)
	if err != nil {
		return "", err
	}
	if r.IsActive != nil && *r.IsActive != status.IsActive() {
		return "", errStatusMismatch
	}
	return status, nil
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
