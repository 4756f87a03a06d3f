package service

import (
	"errors"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrBusinessNotFound = errors.New("business not found")

type BusinessMutation struct {
	Name        string
	Category    string
	Location    string
	AskingPrice *float64
	Description string
	Images      []string
	OwnerUserID *uint
}

type BusinessService interface {
	ListBusinesses(activeOnly bool) ([]model.Business, error)
	GetBusinessByID(id uint) (*model.Business, error)
	CreateBusiness(input BusinessMutation) (*model.Business, error)
	SetStatus(id uint, status model.ListingStatus) (*model.Business, error)
	Activate(id uint) (*model.Business, error)
	Deactivate(id uint) (*model.Business, error)
	SetPending(id uint) (*model.Business, error)
}

type businessService struct {
	businessRepo repository.BusinessRepository
}

func NewBusinessService(businessRepo repository.BusinessRepository) BusinessService {
	return &businessService{businessRepo: businessRepo}
}

func (s *businessService) ListBusinesses(activeOnly bool) ([]model.Business, error) {
	businesses, err := s.businessRepo.FindAll(activeOnly)
	if err != nil {
		logger.Error("Failed to list businesses", err, map[string]interface{}{
			"active_only": activeOnly,
		})
		return nil, err
	}

	logger.Debug("Businesses fetched", map[string]interface{}{
		"count":       len(businesses),
		"active_only": activeOnly,
	})
	return businesses, nil
}

func (s *businessService) GetBusinessByID(id uint) (*model.Business, error) {
	business, err := s.businessRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Business not found", map[string]interface{}{
				"business_id": id,
			})
			return nil, ErrBusinessNotFound
		}
		logger.Error("Failed to fetch business", err, map[string]interface{}{
			"business_id": id,
		})
		return nil, err
	}

	return business, nil
}

// CreateBusiness stores a new submission, always pending and hidden.
func (s *businessService) CreateBusiness(input BusinessMutation) (*model.Business, error) {
	logger.Info("Creating business", map[string]interface{}{
		"name":     input.Name,
		"location": input.Location,
	})

	business := &model.Business{
		OwnerUserID: input.OwnerUserID,
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		AskingPrice: input.AskingPrice,
		Description: input.Description,
		Images:      input.Images,
		Status:      model.StatusPending,
		IsActive:    model.StatusPending.IsActive(),
	}

	if err := s.businessRepo.Create(business); err != nil {
		logger.Error("Failed to create business", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Business created", map[string]interface{}{
		"business_id": business.ID,
		"name":        business.Name,
	})
	return business, nil
}

// SetStatus applies a moderation transition and returns the updated listing.
func (s *businessService) SetStatus(id uint, status model.ListingStatus) (*model.Business, error) {
	logger.Info("Updating business status", map[string]interface{}{
		"business_id": id,
		"status":      status,
	})

	if err := s.businessRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Business not found for status update", map[string]interface{}{
				"business_id": id,
			})
			return nil, ErrBusinessNotFound
		}
		logger.Error("Failed to update business status", err, map[string]interface{}{
			"business_id": id,
		})
		return nil, err
	}

	updated, err := s.businessRepo.FindByID(id)
	if err != nil {
		logger.Error("Failed to reload business after status update", err, map[string]interface{}{
			"business_id": id,
		})
		return nil, err
	}

	logger.Info("Business status updated", map[string]interface{}{
		"business_id": id,
		"status":      updated.Status,
		"is_active":   updated.IsActive,
	})
	return updated, nil
}

func (s *businessService) Activate(id uint) (*model.Business, error) {
	return s.SetStatus(id, model.StatusActive)
}

func (s *businessService) Deactivate(id uint) (*model.Business, error) {
	return s.SetStatus(id, model.StatusInactive)
}

func (s *businessService) SetPending(id uint) (*model.Business, error) {
	return s.SetStatus(id, model.StatusPending)
}
