package repository

import (
	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(business *model.Business) error
	Update(business *model.Business) error
	FindAll(activeOnly bool) ([]model.Business, error)
	FindByID(id uint) (*model.Business, error)
	UpdateStatus(id uint, status model.ListingStatus) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(business *model.Business) error {
	logger.Debug("Creating business in database", map[string]interface{}{
		"name":     business.Name,
		"location": business.Location,
	})

	if err := r.db.Create(business).Error; err != nil {
		logger.Error("Failed to create business in database", err, map[string]interface{}{
			"name": business.Name,
		})
		return err
	}

	return nil
}

func (r *businessRepository) Update(business *model.Business) error {
	if err := r.db.Save(business).Error; err != nil {
		logger.Error("Failed to update business in database", err, map[string]interface{}{
			"business_id": business.ID,
		})
		return err
	}
	return nil
}

func (r *businessRepository) FindAll(activeOnly bool) ([]model.Business, error) {
	query := r.db.Model(&model.Business{})
	if activeOnly {
		query = query.Where("status = ?", model.StatusActive)
	}

	var businesses []model.Business
	if err := query.Order("created_at DESC").Find(&businesses).Error; err != nil {
		logger.Error("Failed to find businesses", err, map[string]interface{}{
			"active_only": activeOnly,
		})
		return nil, err
	}

	return businesses, nil
}

func (r *businessRepository) FindByID(id uint) (*model.Business, error) {
	var business model.Business
	if err := r.db.First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

// UpdateStatus applies a status transition as a single row update.
func (r *businessRepository) UpdateStatus(id uint, status model.ListingStatus) error {
	result := r.db.Model(&model.Business{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    status,
			"is_active": status.IsActive(),
		})
	if result.Error != nil {
		logger.Error("Failed to update business status", result.Error, map[string]interface{}{
			"business_id": id,
			"status":      status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Business status updated", map[string]interface{}{
		"business_id": id,
		"status":      status,
		"is_active":   status.IsActive(),
	})
	return nil
}
