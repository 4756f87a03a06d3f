package controller

import (
	"net/http"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/internal/errors"
	"github.com/franchisehub/franchisehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type InquiryController struct {
	inquiryService service.InquiryService
}

func NewInquiryController(inquiryService service.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

type InquiryRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
	FranchiseID *uint  `json:"franchise_id"`
	BusinessID  *uint  `json:"business_id"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateInquiry accepts a visitor inquiry. Public endpoint, rate limited.
func (ctrl *InquiryController) CreateInquiry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid inquiry request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	created, err := ctrl.inquiryService.CreateInquiry(service.InquiryMutation{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		FranchiseID: req.FranchiseID,
		BusinessID:  req.BusinessID,
	})
	if err != nil {
		if err == service.ErrInquiryInvalidTarget {
			errors.BadRequest(c, errors.InquiryInvalidTarget, "An inquiry may target a franchise or a business, not both")
			return
		}
		log.Error("Failed to create inquiry", err, map[string]interface{}{
			"email": req.Email,
		})
		errors.InternalError(c, "Failed to create inquiry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"inquiry": created,
	})
}

// ListInquiries returns the moderation view, filtered by the search, status
// and type query parameters.
func (ctrl *InquiryController) ListInquiries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	params := service.InquiryFilterParams{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}

	inquiries, err := ctrl.inquiryService.ListInquiries(params)
	if err != nil {
		log.Error("Failed to list inquiries", err, nil)
		errors.InternalError(c, "Failed to fetch inquiries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries": inquiries,
		"count":     len(inquiries),
	})
}

func (ctrl *InquiryController) UpdateInquiryStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid inquiry ID")
		return
	}

	var req InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid inquiry status request", map[string]interface{}{
			"inquiry_id": id,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	status := model.InquiryStatus(req.Status)
	if !status.Valid() {
		errors.BadRequest(c, errors.ValidationInvalidStatus, "Invalid status value")
		return
	}

	updated, err := ctrl.inquiryService.SetStatus(id, status)
	if err != nil {
		if err == service.ErrInquiryNotFound {
			errors.NotFound(c, errors.InquiryNotFound, "Inquiry not found")
			return
		}
		log.Error("Failed to update inquiry status", err, map[string]interface{}{
			"inquiry_id": id,
		})
		errors.InternalError(c, "Failed to update inquiry status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiry": updated,
	})
}
