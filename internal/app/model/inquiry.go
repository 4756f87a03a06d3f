package model

import (
	"time"

	"gorm.io/gorm"
)

// InquiryType classifies an inquiry by its target. It is derived from the
// foreign keys, never stored.
type InquiryType string

const (
	InquiryTypeFranchise InquiryType = "franchise"
	InquiryTypeBusiness  InquiryType = "business"
	InquiryTypeGeneral   InquiryType = "general"
)

// Inquiry is a customer message about a franchise, a business, or the site
// in general. At most one of FranchiseID/BusinessID is set.
type Inquiry struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `gorm:"not null" json:"email"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Subject     string         `gorm:"not null" json:"subject"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	FranchiseID *uint          `gorm:"index" json:"franchise_id,omitempty"`
	Franchise   *Franchise     `gorm:"foreignKey:FranchiseID;constraint:OnDelete:SET NULL" json:"franchise,omitempty"`
	BusinessID  *uint          `gorm:"index" json:"business_id,omitempty"`
	Business    *Business      `gorm:"foreignKey:BusinessID;constraint:OnDelete:SET NULL" json:"business,omitempty"`
	Status      InquiryStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

// Type derives the inquiry classification from the foreign keys.
func (i *Inquiry) Type() InquiryType {
	if i.FranchiseID != nil {
		return InquiryTypeFranchise
	}
	if i.BusinessID != nil {
		return InquiryTypeBusiness
	}
	return InquiryTypeGeneral
}
