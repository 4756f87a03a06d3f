package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// StringArray stores a JSON array in a TEXT column (image URL lists)
type StringArray []string

// Value implements database/sql/driver.Valuer
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements database/sql.Scanner
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringArray")
	}

	return json.Unmarshal(bytes, s)
}

// Franchise is a franchise opportunity listing subject to moderation.
// Status and IsActive are kept coherent by the services; IsActive is always
// derived from Status via ListingStatus.IsActive.
type Franchise struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	OwnerUserID   *uint          `gorm:"index" json:"owner_user_id,omitempty"` // nullable - curated entries have no owner
	Owner         *User          `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"owner,omitempty"`
	Name          string         `gorm:"not null" json:"name"`
	Slug          string         `gorm:"uniqueIndex" json:"slug"` // URL identifier (SEO)
	Category      string         `gorm:"index" json:"category"`
	Description   string         `gorm:"type:text" json:"description"`
	MinInvestment *float64       `json:"min_investment,omitempty"`
	MaxInvestment *float64       `json:"max_investment,omitempty"`
	LogoURL       string         `json:"logo_url"`
	Images        StringArray    `gorm:"type:text" json:"images,omitempty"`
	Status        ListingStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IsActive      bool           `gorm:"default:false;index" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Franchise) TableName() string {
	return "franchises"
}

// generateSlug builds a URL slug from a category and name
func generateSlug(category, name string) string {
	slug := fmt.Sprintf("%s-%s", category, name)

	// strip everything but letters, digits and hyphens
	reg := regexp.MustCompile(`[^\p{L}\p{N}-]+`)
	slug = reg.ReplaceAllString(slug, "-")

	// collapse consecutive hyphens
	reg = regexp.MustCompile(`-+`)
	slug = reg.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")
	slug = strings.ToLower(slug)

	return slug
}

// uniqueSlug appends a counter until the slug is unique within the table
func uniqueSlug(tx *gorm.DB, table interface{}, baseSlug string, excludeID uint) (string, error) {
	slug := baseSlug
	counter := 1
	for {
		var count int64
		query := tx.Model(table).Where("slug = ?", slug)
		if excludeID != 0 {
			query = query.Where("id != ?", excludeID)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}

		if count == 0 {
			return slug, nil
		}

		counter++
		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
	}
}

// BeforeCreate assigns a slug when none was provided
func (f *Franchise) BeforeCreate(tx *gorm.DB) error {
	if f.Slug == "" {
		slug, err := uniqueSlug(tx, &Franchise{}, generateSlug(f.Category, f.Name), 0)
		if err != nil {
			return err
		}
		f.Slug = slug
	}
	return nil
}
