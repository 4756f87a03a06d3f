package model

import (
	"time"

	"gorm.io/gorm"
)

// AdPlacement is where an advertisement banner is shown.
type AdPlacement string

const (
	PlacementHome    AdPlacement = "home"
	PlacementSidebar AdPlacement = "sidebar"
	PlacementSearch  AdPlacement = "search"
)

func (p AdPlacement) Valid() bool {
	switch p {
	case PlacementHome, PlacementSidebar, PlacementSearch:
		return true
	}
	return false
}

// Advertisement is a paid promo banner. Besides the moderation lifecycle it
// carries a billing state and a campaign window; the expiry scheduler
// deactivates paid ads once EndsAt has passed.
type Advertisement struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	OwnerUserID   *uint          `gorm:"index" json:"owner_user_id,omitempty"`
	Owner         *User          `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"owner,omitempty"`
	Title         string         `gorm:"not null" json:"title"`
	ImageURL      string         `gorm:"not null" json:"image_url"`
	TargetURL     string         `json:"target_url"`
	Placement     AdPlacement    `gorm:"type:varchar(20);default:'home';index" json:"placement"`
	Status        ListingStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IsActive      bool           `gorm:"default:false;index" json:"is_active"`
	PaymentStatus PaymentStatus  `gorm:"type:varchar(20);default:'unpaid'" json:"payment_status"`
	StartsAt      *time.Time     `json:"starts_at,omitempty"`
	EndsAt        *time.Time     `gorm:"index" json:"ends_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}
