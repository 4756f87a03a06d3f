package service

import (
	"errors"
	"time"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrAdvertisementNotFound = errors.New("advertisement not found")

type AdvertisementMutation struct {
	Title       string
	ImageURL    string
	TargetURL   string
	Placement   model.AdPlacement
	StartsAt    *time.Time
	EndsAt      *time.Time
	OwnerUserID *uint
}

type AdvertisementService interface {
	ListAdvertisements(activeOnly bool) ([]model.Advertisement, error)
	GetAdvertisementByID(id uint) (*model.Advertisement, error)
	CreateAdvertisement(input AdvertisementMutation) (*model.Advertisement, error)
	SetStatus(id uint, status model.ListingStatus) (*model.Advertisement, error)
	Activate(id uint) (*model.Advertisement, error)
	Deactivate(id uint) (*model.Advertisement, error)
	SetPending(id uint) (*model.Advertisement, error)
	ExpireCampaigns(now time.Time) (int, error)
}

type advertisementService struct {
	adRepo repository.AdvertisementRepository
}

func NewAdvertisementService(adRepo repository.AdvertisementRepository) AdvertisementService {
	return &advertisementService{adRepo: adRepo}
}

func (s *advertisementService) ListAdvertisements(activeOnly bool) ([]model.Advertisement, error) {
	ads, err := s.adRepo.FindAll(activeOnly)
	if err != nil {
		logger.Error("Failed to list advertisements", err, map[string]interface{}{
			"active_only": activeOnly,
		})
		return nil, err
	}

	logger.Debug("Advertisements fetched", map[string]interface{}{
		"count":       len(ads),
		"active_only": activeOnly,
	})
	return ads, nil
}

func (s *advertisementService) GetAdvertisementByID(id uint) (*model.Advertisement, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Advertisement not found", map[string]interface{}{
				"ad_id": id,
			})
			return nil, ErrAdvertisementNotFound
		}
		logger.Error("Failed to fetch advertisement", err, map[string]interface{}{
			"ad_id": id,
		})
		return nil, err
	}

	return ad, nil
}

// CreateAdvertisement stores a new submission: pending, hidden and unpaid.
// Payment settlement happens outside this system; only the resulting
// payment_status is tracked here.
func (s *advertisementService) CreateAdvertisement(input AdvertisementMutation) (*model.Advertisement, error) {
	logger.Info("Creating advertisement", map[string]interface{}{
		"title":     input.Title,
		"placement": input.Placement,
	})

	placement := input.Placement
	if placement == "" {
		placement = model.PlacementHome
	}

	ad := &model.Advertisement{
		OwnerUserID:   input.OwnerUserID,
		Title:         input.Title,
		ImageURL:      input.ImageURL,
		TargetURL:     input.TargetURL,
		Placement:     placement,
		Status:        model.StatusPending,
		IsActive:      model.StatusPending.IsActive(),
		PaymentStatus: model.PaymentUnpaid,
		StartsAt:      input.StartsAt,
		EndsAt:        input.EndsAt,
	}

	if err := s.adRepo.Create(ad); err != nil {
		logger.Error("Failed to create advertisement", err, map[string]interface{}{
			"title": input.Title,
		})
		return nil, err
	}

	logger.Info("Advertisement created", map[string]interface{}{
		"ad_id": ad.ID,
		"title": ad.Title,
	})
	return ad, nil
}

// SetStatus applies a moderation transition and returns the updated ad.
func (s *advertisementService) SetStatus(id uint, status model.ListingStatus) (*model.Advertisement, error) {
	logger.Info("Updating advertisement status", map[string]interface{}{
		"ad_id":  id,
		"status": status,
	})

	if err := s.adRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Advertisement not found for status update", map[string]interface{}{
				"ad_id": id,
			})
			return nil, ErrAdvertisementNotFound
		}
		logger.Error("Failed to update advertisement status", err, map[string]interface{}{
			"ad_id": id,
		})
		return nil, err
	}

	updated, err := s.adRepo.FindByID(id)
	if err != nil {
		logger.Error("Failed to reload advertisement after status update", err, map[string]interface{}{
			"ad_id": id,
		})
		return nil, err
	}

	logger.Info("Advertisement status updated", map[string]interface{}{
		"ad_id":     id,
		"status":    updated.Status,
		"is_active": updated.IsActive,
	})
	return updated, nil
}

func (s *advertisementService) Activate(id uint) (*model.Advertisement, error) {
	return s.SetStatus(id, model.StatusActive)
}

func (s *advertisementService) Deactivate(id uint) (*model.Advertisement, error) {
	return s.SetStatus(id, model.StatusInactive)
}

func (s *advertisementService) SetPending(id uint) (*model.Advertisement, error) {
	return s.SetStatus(id, model.StatusPending)
}

// ExpireCampaigns deactivates every active advertisement whose campaign
// window ended before now. Returns the number of ads deactivated. Called by
// the daily scheduler; safe to run repeatedly since deactivation is
// idempotent.
func (s *advertisementService) ExpireCampaigns(now time.Time) (int, error) {
	expired, err := s.adRepo.FindExpired(now)
	if err != nil {
		logger.Error("Failed to query expired advertisements", err)
		return 0, err
	}

	deactivated := 0
	for _, ad := range expired {
		if err := s.adRepo.UpdateStatus(ad.ID, model.StatusInactive); err != nil {
			// Row may have been moderated away between the query and the
			// update; skip and continue with the rest.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			logger.Error("Failed to deactivate expired advertisement", err, map[string]interface{}{
				"ad_id": ad.ID,
			})
			return deactivated, err
		}
		deactivated++

		logger.Info("Expired advertisement deactivated", map[string]interface{}{
			"ad_id":   ad.ID,
			"ends_at": ad.EndsAt,
		})
	}

	return deactivated, nil
}
