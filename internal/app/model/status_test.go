package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatus_IsActive(t *testing.T) {
	assert.False(t, StatusPending.IsActive())
	assert.True(t, StatusActive.IsActive())
	assert.False(t, StatusInactive.IsActive())
}

func TestParseListingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "active", "inactive"} {
		status, err := ParseListingStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, ListingStatus(valid), status)
	}

	for _, invalid := range []string{"", "archived", "ACTIVE", "deleted"} {
		_, err := ParseListingStatus(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestStatusFromActive(t *testing.T) {
	assert.Equal(t, StatusActive, StatusFromActive(true))
	assert.Equal(t, StatusInactive, StatusFromActive(false))

	// Round trip: the derived flag agrees with the input
	assert.True(t, StatusFromActive(true).IsActive())
	assert.False(t, StatusFromActive(false).IsActive())
}

func TestInquiryStatus_Valid(t *testing.T) {
	assert.True(t, InquiryPending.Valid())
	assert.True(t, InquiryReplied.Valid())
	assert.True(t, InquiryClosed.Valid())
	assert.False(t, InquiryStatus("resolved").Valid())
	assert.False(t, InquiryStatus("").Valid())
}

func TestInquiry_Type(t *testing.T) {
	franchiseID := uint(1)
	businessID := uint(2)

	assert.Equal(t, InquiryTypeFranchise, (&Inquiry{FranchiseID: &franchiseID}).Type())
	assert.Equal(t, InquiryTypeBusiness, (&Inquiry{BusinessID: &businessID}).Type())
	assert.Equal(t, InquiryTypeGeneral, (&Inquiry{}).Type())
}

func TestAdPlacement_Valid(t *testing.T) {
	assert.True(t, PlacementHome.Valid())
	assert.True(t, PlacementSidebar.Valid())
	assert.True(t, PlacementSearch.Valid())
	assert.False(t, AdPlacement("footer").Valid())
}
