package controller

import (
	"net/http"
	"time"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/internal/errors"
	"github.com/franchisehub/franchisehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AdvertisementController struct {
	adService service.AdvertisementService
}

func NewAdvertisementController(adService service.AdvertisementService) *AdvertisementController {
	return &AdvertisementController{adService: adService}
}

type AdvertisementRequest struct {
	Title     string     `json:"title" binding:"required"`
	ImageURL  string     `json:"image_url" binding:"required"`
	TargetURL string     `json:"target_url"`
	Placement string     `json:"placement"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

// ListAdvertisements returns active advertisements (public read)
func (ctrl *AdvertisementController) ListAdvertisements(c *gin.Context) {
	ctrl.list(c, true)
}

// ListAllAdvertisements returns every advertisement regardless of status (moderation)
func (ctrl *AdvertisementController) ListAllAdvertisements(c *gin.Context) {
	ctrl.list(c, false)
}

func (ctrl *AdvertisementController) list(c *gin.Context, activeOnly bool) {
	log := middleware.GetLoggerFromContext(c)

	ads, err := ctrl.adService.ListAdvertisements(activeOnly)
	if err != nil {
		log.Error("Failed to list advertisements", err, nil)
		errors.InternalError(c, "Failed to fetch advertisements")
		return
	}

	if !activeOnly {
		ads = service.FilterAdvertisementsByTitle(ads, c.Query("search"))
	}

	c.JSON(http.StatusOK, gin.H{
		"advertisements": ads,
		"count":          len(ads),
	})
}

func (ctrl *AdvertisementController) GetAdvertisementByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		log.Warn("Invalid advertisement ID", map[string]interface{}{
			"advertisement_id": c.Param("id"),
		})
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid advertisement ID")
		return
	}

	ad, err := ctrl.adService.GetAdvertisementByID(id)
	if err != nil {
		if err == service.ErrAdvertisementNotFound {
			errors.NotFound(c, errors.AdNotFound, "Advertisement not found")
			return
		}
		log.Error("Failed to fetch advertisement", err, map[string]interface{}{
			"advertisement_id": id,
		})
		errors.InternalError(c, "Failed to fetch advertisement")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advertisement": ad,
	})
}

func (ctrl *AdvertisementController) CreateAdvertisement(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid advertisement creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Placement != "" && !model.AdPlacement(req.Placement).Valid() {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid placement value")
		return
	}
	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Campaign end must not precede its start")
		return
	}

	input := service.AdvertisementMutation{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Placement: model.AdPlacement(req.Placement),
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	}
	if userID, exists := middleware.GetUserID(c); exists {
		input.OwnerUserID = &userID
	}

	created, err := ctrl.adService.CreateAdvertisement(input)
	if err != nil {
		log.Error("Failed to create advertisement", err, map[string]interface{}{
			"title": req.Title,
		})
		errors.InternalError(c, "Failed to create advertisement")
		return
	}

	log.Info("Advertisement created", map[string]interface{}{
		"advertisement_id": created.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"advertisement": created,
	})
}

// UpdateAdvertisementStatus applies a moderation transition. The body carries
// both status and is_active; a pairing that disagrees is rejected.
func (ctrl *AdvertisementController) UpdateAdvertisementStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid advertisement ID")
		return
	}

	var req ListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid advertisement status request", map[string]interface{}{
			"advertisement_id": id,
			"error":            err.Error(),
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

	updated, err := ctrl.adService.SetStatus(id, status)
	if err != nil {
		if err == service.ErrAdvertisementNotFound {
			errors.NotFound(c, errors.AdNotFound, "Advertisement not found")
			return
		}
		log.Error("Failed to update advertisement status", err, map[string]interface{}{
			"advertisement_id": id,
		})
		errors.InternalError(c, "Failed to update advertisement status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advertisement": updated,
	})
}
