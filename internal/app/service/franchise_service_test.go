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

func setupFranchiseServiceTest(t *testing.T) (FranchiseService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	franchiseRepo := repository.NewFranchiseRepository(testDB)
	return NewFranchiseService(franchiseRepo), testDB
}

func TestFranchiseService_CreateFranchise_StartsPending(t *testing.T) {
	franchiseService, _ := setupFranchiseServiceTest(t)

	created, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Coffee Corner",
		Category: "food",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, created.Status)
	assert.False(t, created.IsActive)
	assert.NotEmpty(t, created.Slug)
}

func TestFranchiseService_ListFranchises_ActiveOnlyHidesPending(t *testing.T) {
	franchiseService, _ := setupFranchiseServiceTest(t)

	pending, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Pending Franchise",
		Category: "retail",
	})
	require.NoError(t, err)

	activated, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Approved Franchise",
		Category: "retail",
	})
	require.NoError(t, err)
	_, err = franchiseService.Activate(activated.ID)
	require.NoError(t, err)

	visible, err := franchiseService.ListFranchises(true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, activated.ID, visible[0].ID)

	all, err := franchiseService.ListFranchises(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Both still resolvable by ID regardless of visibility
	_, err = franchiseService.GetFranchiseByID(pending.ID)
	assert.NoError(t, err)
}

func TestFranchiseService_SetStatus_DerivesIsActive(t *testing.T) {
	franchiseService, _ := setupFranchiseServiceTest(t)

	created, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Lifecycle Franchise",
		Category: "services",
	})
	require.NoError(t, err)

	activated, err := franchiseService.Activate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, activated.Status)
	assert.True(t, activated.IsActive)

	deactivated, err := franchiseService.Deactivate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, deactivated.Status)
	assert.False(t, deactivated.IsActive)

	backToPending, err := franchiseService.SetPending(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, backToPending.Status)
	assert.False(t, backToPending.IsActive)
}

func TestFranchiseService_SetStatus_Idempotent(t *testing.T) {
	franchiseService, _ := setupFranchiseServiceTest(t)

	created, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Twice Activated",
		Category: "food",
	})
	require.NoError(t, err)

	first, err := franchiseService.Activate(created.ID)
	require.NoError(t, err)

	second, err := franchiseService.Activate(created.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.IsActive, second.IsActive)
}

func TestFranchiseService_SetStatus_NotFound(t *testing.T) {
	franchiseService, testDB := setupFranchiseServiceTest(t)

	_, err := franchiseService.Activate(9999)
	assert.ErrorIs(t, err, ErrFranchiseNotFound)

	// A failed transition must not have written anything
	var count int64
	require.NoError(t, testDB.Model(&model.Franchise{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFranchiseService_GetFranchiseByID_NotFound(t *testing.T) {
	franchiseService, _ := setupFranchiseServiceTest(t)

	_, err := franchiseService.GetFranchiseByID(424242)
	assert.ErrorIs(t, err, ErrFranchiseNotFound)
}

func TestFranchiseService_SlugUniqueness(t *testing.T) {
	franchiseService, _ := setupFranchiseServiceTest(t)

	first, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Same Name",
		Category: "food",
	})
	require.NoError(t, err)

	second, err := franchiseService.CreateFranchise(FranchiseMutation{
		Name:     "Same Name",
		Category: "food",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
}
