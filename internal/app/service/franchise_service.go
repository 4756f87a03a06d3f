package service

import (
	"errors"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrFranchiseNotFound = errors.New("franchise not found")

type FranchiseMutation struct {
	Name          string
	Category      string
	Description   string
	MinInvestment *float64
	MaxInvestment *float64
	LogoURL       string
	Images        []string
	OwnerUserID   *uint
}

type FranchiseService interface {
	ListFranchises(activeOnly bool) ([]model.Franchise, error)
	GetFranchiseByID(id uint) (*model.Franchise, error)
	CreateFranchise(input FranchiseMutation) (*model.Franchise, error)
	SetStatus(id uint, status model.ListingStatus) (*model.Franchise, error)
	Activate(id uint) (*model.Franchise, error)
	Deactivate(id uint) (*model.Franchise, error)
	SetPending(id uint) (*model.Franchise, error)
}

type franchiseService struct {
	franchiseRepo repository.FranchiseRepository
}

func NewFranchiseService(franchiseRepo repository.FranchiseRepository) FranchiseService {
	return &franchiseService{franchiseRepo: franchiseRepo}
}

func (s *franchiseService) ListFranchises(activeOnly bool) ([]model.Franchise, error) {
	franchises, err := s.franchiseRepo.FindAll(activeOnly)
	if err != nil {
		logger.Error("Failed to list franchises", err, map[string]interface{}{
			"active_only": activeOnly,
		})
		return nil, err
	}

	logger.Debug("Franchises fetched", map[string]interface{}{
		"count":       len(franchises),
		"active_only": activeOnly,
	})
	return franchises, nil
}

func (s *franchiseService) GetFranchiseByID(id uint) (*model.Franchise, error) {
	franchise, err := s.franchiseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Franchise not found", map[string]interface{}{
				"franchise_id": id,
			})
			return nil, ErrFranchiseNotFound
		}
		logger.Error("Failed to fetch franchise", err, map[string]interface{}{
			"franchise_id": id,
		})
		return nil, err
	}

	return franchise, nil
}

// CreateFranchise stores a new submission. Every new listing starts pending
// and hidden, whatever the caller sent.
func (s *franchiseService) CreateFranchise(input FranchiseMutation) (*model.Franchise, error) {
	logger.Info("Creating franchise", map[string]interface{}{
		"name":     input.Name,
		"category": input.Category,
	})

	franchise := &model.Franchise{
		OwnerUserID:   input.OwnerUserID,
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		MinInvestment: input.MinInvestment,
		MaxInvestment: input.MaxInvestment,
		LogoURL:       input.LogoURL,
		Images:        input.Images,
		Status:        model.StatusPending,
		IsActive:      model.StatusPending.IsActive(),
	}

	if err := s.franchiseRepo.Create(franchise); err != nil {
		logger.Error("Failed to create franchise", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Franchise created", map[string]interface{}{
		"franchise_id": franchise.ID,
		"name":         franchise.Name,
	})
	return franchise, nil
}

// SetStatus applies a moderation transition and returns the updated listing.
// Transitions are idempotent; re-applying the current status is a no-op
// success.
func (s *franchiseService) SetStatus(id uint, status model.ListingStatus) (*model.Franchise, error) {
	logger.Info("Updating franchise status", map[string]interface{}{
		"franchise_id": id,
		"status":       status,
	})

	if err := s.franchiseRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Franchise not found for status update", map[string]interface{}{
				"franchise_id": id,
			})
			return nil, ErrFranchiseNotFound
		}
		logger.Error("Failed to update franchise status", err, map[string]interface{}{
			"franchise_id": id,
		})
		return nil, err
	}

	updated, err := s.franchiseRepo.FindByID(id)
	if err != nil {
		logger.Error("Failed to reload franchise after status update", err, map[string]interface{}{
			"franchise_id": id,
		})
		return nil, err
	}

	logger.Info("Franchise status updated", map[string]interface{}{
		"franchise_id": id,
		"status":       updated.Status,
		"is_active":    updated.IsActive,
	})
	return updated, nil
}

func (s *franchiseService) Activate(id uint) (*model.Franchise, error) {
	return s.SetStatus(id, model.StatusActive)
}

func (s *franchiseService) Deactivate(id uint) (*model.Franchise, error) {
	return s.SetStatus(id, model.StatusInactive)
}

func (s *franchiseService) SetPending(id uint) (*model.Franchise, error) {
	return s.SetStatus(id, model.StatusPending)
}
