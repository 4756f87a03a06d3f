package controller

import (
	"net/http"

	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/internal/errors"
	"github.com/franchisehub/franchisehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	businessService service.BusinessService
}

func NewBusinessController(businessService service.BusinessService) *BusinessController {
	return &BusinessController{businessService: businessService}
}

type BusinessRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Location    string   `json:"location"`
	AskingPrice *float64 `json:"asking_price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// ListBusinesses returns active businesses (public read)
func (ctrl *BusinessController) ListBusinesses(c *gin.Context) {
	ctrl.list(c, true)
}

// ListAllBusinesses returns every business regardless of status (moderation)
func (ctrl *BusinessController) ListAllBusinesses(c *gin.Context) {
	ctrl.list(c, false)
}

func (ctrl *BusinessController) list(c *gin.Context, activeOnly bool) {
	log := middleware.GetLoggerFromContext(c)

	businesses, err := ctrl.businessService.ListBusinesses(activeOnly)
	if err != nil {
		log.Error("Failed to list businesses", err, nil)
		errors.InternalError(c, "Failed to fetch businesses")
		return
	}

	if !activeOnly {
		businesses = service.FilterBusinessesByName(businesses, c.Query("search"))
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"count":      len(businesses),
	})
}

func (ctrl *BusinessController) GetBusinessByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		log.Warn("Invalid business ID", map[string]interface{}{
			"business_id": c.Param("id"),
		})
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid business ID")
		return
	}

	business, err := ctrl.businessService.GetBusinessByID(id)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			errors.NotFound(c, errors.BusinessNotFound, "Business not found")
			return
		}
		log.Error("Failed to fetch business", err, map[string]interface{}{
			"business_id": id,
		})
		errors.InternalError(c, "Failed to fetch business")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": business,
	})
}

func (ctrl *BusinessController) CreateBusiness(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid business creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	created, err := ctrl.businessService.CreateBusiness(service.BusinessMutation{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		AskingPrice: req.AskingPrice,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		log.Error("Failed to create business", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.InternalError(c, "Failed to create business")
		return
	}

	log.Info("Business created", map[string]interface{}{
		"business_id": created.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"business": created,
	})
}

// UpdateBusinessStatus applies a moderation transition. The body carries both
// status and is_active; a pairing that disagrees is rejected.
func (ctrl *BusinessController) UpdateBusinessStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid business ID")
		return
	}

	var req ListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid business status request", map[string]interface{}{
			"business_id": id,
			"error":       err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	status, err := req.Resolve()
	if err != nil {
		if err == errStatusMismatch {
			errors.BadRequest(c, errors.ListingStatusMismatch, "status and is_active do not agree")
			return
		}
		errors.BadRequest(c, errors.ValidationInvalidStatus, "Invalid status value")
		return
	}

	updated, err := ctrl.businessService.SetStatus(id, status)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			errors.NotFound(c, errors.BusinessNotFound, "Business not found")
			return
		}
		log.Error("Failed to update business status", err, map[string]interface{}{
			"business_id": id,
		})
		errors.InternalError(c, "Failed to update business status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": updated,
	})
}
