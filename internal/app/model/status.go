package model

import "fmt"

// ListingStatus is the moderation state shared by franchises, businesses and
// advertisements. A listing is created pending, made visible by activation
// and hidden (soft-deleted) by deactivation. Any state is reachable from any
// other; moderators may move a listing freely between the three.
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"  // awaiting moderation, hidden
	StatusActive   ListingStatus = "active"   // visible on public reads
	StatusInactive ListingStatus = "inactive" // hidden, soft-deleted
)

// IsActive derives the visibility flag from the status. The flag is never
// set independently; persisting both fields always goes through this.
func (s ListingStatus) IsActive() bool {
	return s == StatusActive
}

// Valid reports whether s is one of the three listing states.
func (s ListingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// ParseListingStatus validates a raw status value from an API body.
func ParseListingStatus(raw string) (ListingStatus, error) {
	s := ListingStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown listing status %q", raw)
	}
	return s, nil
}

// StatusFromActive maps a bare visibility flag onto a status. Used for the
// franchise moderation endpoint, whose body carries is_active only.
func StatusFromActive(isActive bool) ListingStatus {
	if isActive {
		return StatusActive
	}
	return StatusInactive
}

// InquiryStatus is the triage state of a customer inquiry.
type InquiryStatus string

const (
	InquiryPending InquiryStatus = "pending"
	InquiryReplied InquiryStatus = "replied"
	InquiryClosed  InquiryStatus = "closed"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryPending, InquiryReplied, InquiryClosed:
		return true
	}
	return false
}

// PaymentStatus is the billing state of an advertisement.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)
