package model

import (
	"time"

	"gorm.io/gorm"
)

// Business is an existing business offered for sale, subject to moderation.
type Business struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OwnerUserID *uint          `gorm:"index" json:"owner_user_id,omitempty"`
	Owner       *User          `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"owner,omitempty"`
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex" json:"slug"`
	Category    string         `gorm:"index" json:"category"`
	Location    string         `gorm:"index" json:"location"`
	AskingPrice *float64       `json:"asking_price,omitempty"`
	Description string         `gorm:"type:text" json:"description"`
	Images      StringArray    `gorm:"type:text" json:"images,omitempty"`
	Status      ListingStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IsActive    bool           `gorm:"default:false;index" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Business) TableName() string {
	return "businesses"
}

// BeforeCreate assigns a slug when none was provided
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.Slug == "" {
		slug, err := uniqueSlug(tx, &Business{}, generateSlug(b.Category, b.Name), 0)
		if err != nil {
			return err
		}
		b.Slug = slug
	}
	return nil
}
