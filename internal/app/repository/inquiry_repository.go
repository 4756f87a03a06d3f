package repository

import (
	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(inquiry *model.Inquiry) error
	FindAll() ([]model.Inquiry, error)
	FindByID(id uint) (*model.Inquiry, error)
	UpdateStatus(id uint, status model.InquiryStatus) error
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(inquiry *model.Inquiry) error {
	logger.Debug("Creating inquiry in database", map[string]interface{}{
		"email":   inquiry.Email,
		"subject": inquiry.Subject,
	})

	if err := r.db.Create(inquiry).Error; err != nil {
		logger.Error("Failed to create inquiry in database", err, map[string]interface{}{
			"email": inquiry.Email,
		})
		return err
	}

	return nil
}

func (r *inquiryRepository) FindAll() ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	if err := r.db.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		logger.Error("Failed to find inquiries", err)
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepository) FindByID(id uint) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	if err := r.db.First(&inquiry, id).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) UpdateStatus(id uint, status model.InquiryStatus) error {
	result := r.db.Model(&model.Inquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		logger.Error("Failed to update inquiry status", result.Error, map[string]interface{}{
			"inquiry_id": id,
			"status":     status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Inquiry status updated", map[string]interface{}{
		"inquiry_id": id,
		"status":     status,
	})
	return nil
}
