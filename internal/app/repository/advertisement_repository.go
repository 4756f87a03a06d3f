package repository

import (
	"time"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdvertisementRepository interface {
	Create(ad *model.Advertisement) error
	Update(ad *model.Advertisement) error
	FindAll(activeOnly bool) ([]model.Advertisement, error)
	FindByID(id uint) (*model.Advertisement, error)
	UpdateStatus(id uint, status model.ListingStatus) error
	FindExpired(now time.Time) ([]model.Advertisement, error)
}

type advertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) Create(ad *model.Advertisement) error {
	logger.Debug("Creating advertisement in database", map[string]interface{}{
		"title":     ad.Title,
		"placement": ad.Placement,
	})

	if err := r.db.Create(ad).Error; err != nil {
		logger.Error("Failed to create advertisement in database", err, map[string]interface{}{
			"title": ad.Title,
		})
		return err
	}

	return nil
}

func (r *advertisementRepository) Update(ad *model.Advertisement) error {
	if err := r.db.Save(ad).Error; err != nil {
		logger.Error("Failed to update advertisement in database", err, map[string]interface{}{
			"ad_id": ad.ID,
		})
		return err
	}
	return nil
}

func (r *advertisementRepository) FindAll(activeOnly bool) ([]model.Advertisement, error) {
	query := r.db.Model(&model.Advertisement{})
	if activeOnly {
		query = query.Where("status = ?", model.StatusActive)
	}

	var ads []model.Advertisement
	if err := query.Order("created_at DESC").Find(&ads).Error; err != nil {
		logger.Error("Failed to find advertisements", err, map[string]interface{}{
			"active_only": activeOnly,
		})
		return nil, err
	}

	return ads, nil
}

func (r *advertisementRepository) FindByID(id uint) (*model.Advertisement, error) {
	var ad model.Advertisement
	if err := r.db.First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// UpdateStatus applies a status transition as a single row update.
func (r *advertisementRepository) UpdateStatus(id uint, status model.ListingStatus) error {
	result := r.db.Model(&model.Advertisement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    status,
			"is_active": status.IsActive(),
		})
	if result.Error != nil {
		logger.Error("Failed to update advertisement status", result.Error, map[string]interface{}{
			"ad_id":  id,
			"status": status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Advertisement status updated", map[string]interface{}{
		"ad_id":     id,
		"status":    status,
		"is_active": status.IsActive(),
	})
	return nil
}

// FindExpired returns active advertisements whose campaign window has ended.
func (r *advertisementRepository) FindExpired(now time.Time) ([]model.Advertisement, error) {
	var ads []model.Advertisement
	if err := r.db.Model(&model.Advertisement{}).
		Where("status = ? AND ends_at IS NOT NULL AND ends_at < ?", model.StatusActive, now).
		Find(&ads).Error; err != nil {
		logger.Error("Failed to find expired advertisements", err)
		return nil, err
	}
	return ads, nil
}
