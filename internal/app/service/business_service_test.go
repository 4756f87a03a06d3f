package service

import (
	"testing"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBusinessServiceTest(t *testing.T) BusinessService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	businessRepo := repository.NewBusinessRepository(testDB)
	return NewBusinessService(businessRepo)
}

func TestBusinessService_CreateBusiness_StartsPending(t *testing.T) {
	businessService := setupBusinessServiceTest(t)

	price := 250000.0
	created, err := businessService.CreateBusiness(BusinessMutation{
		Name:        "Downtown Bakery",
		Category:    "food",
		Location:    "Springfield",
		AskingPrice: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, created.Status)
	assert.False(t, created.IsActive)
	assert.NotEmpty(t, created.Slug)
}

func TestBusinessService_Lifecycle(t *testing.T) {
	businessService := setupBusinessServiceTest(t)

	created, err := businessService.CreateBusiness(BusinessMutation{
		Name:     "Corner Laundry",
		Category: "services",
	})
	require.NoError(t, err)

	visible, err := businessService.ListBusinesses(true)
	require.NoError(t, err)
	assert.Empty(t, visible)

	activated, err := businessService.Activate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, activated.Status)
	assert.True(t, activated.IsActive)

	visible, err = businessService.ListBusinesses(true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, created.ID, visible[0].ID)

	deactivated, err := businessService.Deactivate(created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	visible, err = businessService.ListBusinesses(true)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestBusinessService_SetStatus_NotFound(t *testing.T) {
	businessService := setupBusinessServiceTest(t)

	_, err := businessService.Deactivate(31337)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}
