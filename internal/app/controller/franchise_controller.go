package controller

import (
	"net/http"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/internal/errors"
	"github.com/franchisehub/franchisehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type FranchiseController struct {
	franchiseService service.FranchiseService
}

func NewFranchiseController(franchiseService service.FranchiseService) *FranchiseController {
	return &FranchiseController{franchiseService: franchiseService}
}

type FranchiseRequest struct {
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Description   string   `json:"description"`
	MinInvestment *float64 `json:"min_investment"`
	MaxInvestment *float64 `json:"max_investment"`
	LogoURL       string   `json:"logo_url"`
	Images        []string `json:"images"`
}

// FranchiseStatusRequest carries is_active only; franchises have no status
// field on the wire and the status is derived from the flag.
type FranchiseStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ListFranchises returns active franchises (public read)
func (ctrl *FranchiseController) ListFranchises(c *gin.Context) {
	ctrl.list(c, true)
}

// ListAllFranchises returns every franchise regardless of status
// (moderation), optionally narrowed by a name search.
func (ctrl *FranchiseController) ListAllFranchises(c *gin.Context) {
	ctrl.list(c, false)
}

func (ctrl *FranchiseController) list(c *gin.Context, activeOnly bool) {
	log := middleware.GetLoggerFromContext(c)

	franchises, err := ctrl.franchiseService.ListFranchises(activeOnly)
	if err != nil {
		log.Error("Failed to list franchises", err, nil)
		errors.InternalError(c, "Failed to fetch franchises")
		return
	}

	if !activeOnly {
		franchises = service.FilterFranchisesByName(franchises, c.Query("search"))
	}

	c.JSON(http.StatusOK, gin.H{
		"franchises": franchises,
		"count":      len(franchises),
	})
}

func (ctrl *FranchiseController) GetFranchiseByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		log.Warn("Invalid franchise ID", map[string]interface{}{
			"franchise_id": c.Param("id"),
		})
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid franchise ID")
		return
	}

	franchise, err := ctrl.franchiseService.GetFranchiseByID(id)
	if err != nil {
		if err == service.ErrFranchiseNotFound {
			errors.NotFound(c, errors.FranchiseNotFound, "Franchise not found")
			return
		}
		log.Error("Failed to fetch franchise", err, map[string]interface{}{
			"franchise_id": id,
		})
		errors.InternalError(c, "Failed to fetch franchise")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"franchise": franchise,
	})
}

func (ctrl *FranchiseController) CreateFranchise(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req FranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid franchise creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	input := service.FranchiseMutation{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		MinInvestment: req.MinInvestment,
		MaxInvestment: req.MaxInvestment,
		LogoURL:       req.LogoURL,
		Images:        req.Images,
	}
	if userID, exists := middleware.GetUserID(c); exists {
		input.OwnerUserID = &userID
	}

	created, err := ctrl.franchiseService.CreateFranchise(input)
	if err != nil {
		log.Error("Failed to create franchise", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.InternalError(c, "Failed to create franchise")
		return
	}

	log.Info("Franchise created", map[string]interface{}{
		"franchise_id": created.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"franchise": created,
	})
}

// UpdateFranchiseStatus applies a moderation transition from a bare
// is_active flag (true -> active, false -> inactive)
func (ctrl *FranchiseController) UpdateFranchiseStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid franchise ID")
		return
	}

	var req FranchiseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid franchise status request", map[string]interface{}{
			"franchise_id": id,
			"error":        err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	updated, err := ctrl.franchiseService.SetStatus(id, model.StatusFromActive(*req.IsActive))
	if err != nil {
		if err == service.ErrFranchiseNotFound {
			errors.NotFound(c, errors.FranchiseNotFound, "Franchise not found")
			return
		}
		log.Error("Failed to update franchise status", err, map[string]interface{}{
			"franchise_id": id,
		})
		errors.InternalError(c, "Failed to update franchise status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"franchise": updated,
	})
}
