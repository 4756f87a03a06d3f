package repository

import (
	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type FranchiseRepository interface {
	Create(franchise *model.Franchise) error
	BulkCreate(franchises []model.Franchise, batchSize int) error
	Update(franchise *model.Franchise) error
	FindAll(activeOnly bool) ([]model.Franchise, error)
	FindByID(id uint) (*model.Franchise, error)
	UpdateStatus(id uint, status model.ListingStatus) error
}

type franchiseRepository struct {
	db *gorm.DB
}

func NewFranchiseRepository(db *gorm.DB) FranchiseRepository {
	return &franchiseRepository{db: db}
}

func (r *franchiseRepository) Create(franchise *model.Franchise) error {
	logger.Debug("Creating franchise in database", map[string]interface{}{
		"name":     franchise.Name,
		"category": franchise.Category,
	})

	if err := r.db.Create(franchise).Error; err != nil {
		logger.Error("Failed to create franchise in database", err, map[string]interface{}{
			"name": franchise.Name,
		})
		return err
	}

	logger.Debug("Franchise created in database", map[string]interface{}{
		"franchise_id": franchise.ID,
		"name":         franchise.Name,
	})
	return nil
}

// BulkCreate inserts franchises in batches. Used by the xlsx import.
func (r *franchiseRepository) BulkCreate(franchises []model.Franchise, batchSize int) error {
	if err := r.db.CreateInBatches(franchises, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create franchises", err, map[string]interface{}{
			"count": len(franchises),
		})
		return err
	}
	return nil
}

func (r *franchiseRepository) Update(franchise *model.Franchise) error {
	if err := r.db.Save(franchise).Error; err != nil {
		logger.Error("Failed to update franchise in database", err, map[string]interface{}{
			"franchise_id": franchise.ID,
		})
		return err
	}
	return nil
}

func (r *franchiseRepository) FindAll(activeOnly bool) ([]model.Franchise, error) {
	query := r.db.Model(&model.Franchise{})
	if activeOnly {
		query = query.Where("status = ?", model.StatusActive)
	}

	var franchises []model.Franchise
	if err := query.Order("created_at DESC").Find(&franchises).Error; err != nil {
		logger.Error("Failed to find franchises", err, map[string]interface{}{
			"active_only": activeOnly,
		})
		return nil, err
	}

	return franchises, nil
}

func (r *franchiseRepository) FindByID(id uint) (*model.Franchise, error) {
	var franchise model.Franchise
	if err := r.db.First(&franchise, id).Error; err != nil {
		return nil, err
	}
	return &franchise, nil
}

// UpdateStatus applies a status transition as a single row update. The
// is_active flag is always derived from the status, never passed in.
func (r *franchiseRepository) UpdateStatus(id uint, status model.ListingStatus) error {
	result := r.db.Model(&model.Franchise{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    status,
			"is_active": status.IsActive(),
		})
	if result.Error != nil {
		logger.Error("Failed to update franchise status", result.Error, map[string]interface{}{
			"franchise_id": id,
			"status":       status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Franchise status updated", map[string]interface{}{
		"franchise_id": id,
		"status":       status,
		"is_active":    status.IsActive(),
	})
	return nil
}
