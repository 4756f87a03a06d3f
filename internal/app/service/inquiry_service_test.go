package service

import (
	"testing"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupInquiryServiceTest(t *testing.T) (InquiryService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	inquiryRepo := repository.NewInquiryRepository(testDB)
	return NewInquiryService(inquiryRepo), testDB
}

func TestInquiryService_CreateInquiry(t *testing.T) {
	inquiryService, testDB := setupInquiryServiceTest(t)

	franchise := &model.Franchise{Name: "Target Franchise", Category: "food"}
	require.NoError(t, testDB.Create(franchise).Error)

	created, err := inquiryService.CreateInquiry(InquiryMutation{
		Name:        "Alice Kim",
		Email:       "alice@example.com",
		Subject:     "Franchise terms",
		Message:     "What are the royalty fees?",
		FranchiseID: &franchise.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, model.InquiryPending, created.Status)
	assert.Equal(t, model.InquiryTypeFranchise, created.Type())
}

func TestInquiryService_CreateInquiry_RejectsDoubleTarget(t *testing.T) {
	inquiryService, _ := setupInquiryServiceTest(t)

	franchiseID := uint(1)
	businessID := uint(2)

	_, err := inquiryService.CreateInquiry(InquiryMutation{
		Name:        "Bob Lee",
		Email:       "bob@example.com",
		Subject:     "Which one?",
		Message:     "Interested in both",
		FranchiseID: &franchiseID,
		BusinessID:  &businessID,
	})
	assert.ErrorIs(t, err, ErrInquiryInvalidTarget)
}

func TestInquiryService_ListInquiries_AppliesFilters(t *testing.T) {
	inquiryService, _ := setupInquiryServiceTest(t)

	_, err := inquiryService.CreateInquiry(InquiryMutation{
		Name:    "Carol Park",
		Email:   "carol@acme.com",
		Subject: "Partnership",
		Message: "General question",
	})
	require.NoError(t, err)

	_, err = inquiryService.CreateInquiry(InquiryMutation{
		Name:    "Dave Jung",
		Email:   "dave@example.com",
		Subject: "Refund",
		Message: "Another general question",
	})
	require.NoError(t, err)

	all, err := inquiryService.ListInquiries(InquiryFilterParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := inquiryService.ListInquiries(InquiryFilterParams{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Carol Park", matched[0].Name)

	none, err := inquiryService.ListInquiries(InquiryFilterParams{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInquiryService_SetStatus(t *testing.T) {
	inquiryService, _ := setupInquiryServiceTest(t)

	created, err := inquiryService.CreateInquiry(InquiryMutation{
		Name:    "Eve Choi",
		Email:   "eve@example.com",
		Subject: "Hours",
		Message: "When are you open?",
	})
	require.NoError(t, err)

	replied, err := inquiryService.SetStatus(created.ID, model.InquiryReplied)
	require.NoError(t, err)
	assert.Equal(t, model.InquiryReplied, replied.Status)

	closed, err := inquiryService.SetStatus(created.ID, model.InquiryClosed)
	require.NoError(t, err)
	assert.Equal(t, model.InquiryClosed, closed.Status)

	// Re-applying the current status succeeds
	closedAgain, err := inquiryService.SetStatus(created.ID, model.InquiryClosed)
	require.NoError(t, err)
	assert.Equal(t, model.InquiryClosed, closedAgain.Status)
}

func TestInquiryService_SetStatus_NotFound(t *testing.T) {
	inquiryService, _ := setupInquiryServiceTest(t)

	_, err := inquiryService.SetStatus(777, model.InquiryReplied)
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}
