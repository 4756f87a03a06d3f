package service

import (
	"errors"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInquiryInvalidTarget = errors.New("inquiry may target a franchise or a business, not both")
)

type InquiryMutation struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	FranchiseID *uint
	BusinessID  *uint
}

type InquiryService interface {
	CreateInquiry(input InquiryMutation) (*model.Inquiry, error)
	ListInquiries(params InquiryFilterParams) ([]model.Inquiry, error)
	SetStatus(id uint, status model.InquiryStatus) (*model.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
}

func NewInquiryService(inquiryRepo repository.InquiryRepository) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo}
}

func (s *inquiryService) CreateInquiry(input InquiryMutation) (*model.Inquiry, error) {
	if input.FranchiseID != nil && input.BusinessID != nil {
		logger.Warn("Inquiry targets both a franchise and a business", map[string]interface{}{
			"franchise_id": *input.FranchiseID,
			"business_id":  *input.BusinessID,
		})
		return nil, ErrInquiryInvalidTarget
	}

	inquiry := &model.Inquiry{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Subject:     input.Subject,
		Message:     input.Message,
		FranchiseID: input.FranchiseID,
		BusinessID:  input.BusinessID,
		Status:      model.InquiryPending,
	}

	if err := s.inquiryRepo.Create(inquiry); err != nil {
		logger.Error("Failed to create inquiry", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}

	logger.Info("Inquiry created", map[string]interface{}{
		"inquiry_id": inquiry.ID,
		"type":       inquiry.Type(),
	})
	return inquiry, nil
}

// ListInquiries fetches the full list and applies the moderation-view
// filters in memory.
func (s *inquiryService) ListInquiries(params InquiryFilterParams) ([]model.Inquiry, error) {
	inquiries, err := s.inquiryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list inquiries", err)
		return nil, err
	}

	filtered := FilterInquiries(inquiries, params)

	logger.Debug("Inquiries fetched", map[string]interface{}{
		"total":    len(inquiries),
		"filtered": len(filtered),
	})
	return filtered, nil
}

// SetStatus moves an inquiry between pending/replied/closed. Idempotent.
func (s *inquiryService) SetStatus(id uint, status model.InquiryStatus) (*model.Inquiry, error) {
	logger.Info("Updating inquiry status", map[string]interface{}{
		"inquiry_id": id,
		"status":     status,
	})

	if err := s.inquiryRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Inquiry not found for status update", map[string]interface{}{
				"inquiry_id": id,
			})
			return nil, ErrInquiryNotFound
		}
		logger.Error("Failed to update inquiry status", err, map[string]interface{}{
			"inquiry_id": id,
		})
		return nil, err
	}

	updated, err := s.inquiryRepo.FindByID(id)
	if err != nil {
		logger.Error("Failed to reload inquiry after status update", err, map[string]interface{}{
			"inquiry_id": id,
		})
		return nil, err
	}

	return updated, nil
}
