package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFranchiseControllerTest(t *testing.T) (*gin.Engine, service.FranchiseService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	franchiseRepo := repository.NewFranchiseRepository(testDB)
	franchiseService := service.NewFranchiseService(franchiseRepo)
	franchiseController := NewFranchiseController(franchiseService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/franchises", franchiseController.ListFranchises)
	router.GET("/franchises/all", franchiseController.ListAllFranchises)
	router.GET("/franchises/:id", franchiseController.GetFranchiseByID)
	router.POST("/franchises", franchiseController.CreateFranchise)
	router.PATCH("/franchises/:id/status", franchiseController.UpdateFranchiseStatus)

	return router, franchiseService
}

func TestFranchiseController_Create_ForcesPending(t *testing.T) {
	router, _ := setupFranchiseControllerTest(t)

	// Status in the body is ignored; every submission starts pending
	w := doJSON(t, router, http.MethodPost, "/franchises", gin.H{
		"name":     "Coffee Corner",
		"category": "food",
		"status":   "active",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)["franchise"].(map[string]interface{})
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, false, created["is_active"])
}

func TestFranchiseController_UpdateStatus_FromActiveFlag(t *testing.T) {
	router, franchiseService := setupFranchiseControllerTest(t)

	created, err := franchiseService.CreateFranchise(service.FranchiseMutation{
		Name:     "Flag Franchise",
		Category: "retail",
	})
	require.NoError(t, err)

	// is_active:true maps to active
	w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/franchises/%d/status", created.ID), gin.H{
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)["franchise"].(map[string]interface{})
	assert.Equal(t, "active", updated["status"])
	assert.Equal(t, true, updated["is_active"])

	// is_active:false maps to inactive, not back to pending
	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/franchises/%d/status", created.ID), gin.H{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated = decodeBody(t, w)["franchise"].(map[string]interface{})
	assert.Equal(t, "inactive", updated["status"])
	assert.Equal(t, false, updated["is_active"])
}

func TestFranchiseController_UpdateStatus_MissingFlag(t *testing.T) {
	router, franchiseService := setupFranchiseControllerTest(t)

	created, err := franchiseService.CreateFranchise(service.FranchiseMutation{
		Name:     "No Flag Franchise",
		Category: "retail",
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/franchises/%d/status", created.ID), gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFranchiseController_UpdateStatus_NotFound(t *testing.T) {
	router, _ := setupFranchiseControllerTest(t)

	w := doJSON(t, router, http.MethodPatch, "/franchises/8888/status", gin.H{
		"is_active": true,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "FRANCHISE_NOT_FOUND", decodeBody(t, w)["error"])
}

func TestFranchiseController_PublicListHidesModerated(t *testing.T) {
	router, franchiseService := setupFranchiseControllerTest(t)

	pending, err := franchiseService.CreateFranchise(service.FranchiseMutation{
		Name:     "Pending One",
		Category: "food",
	})
	require.NoError(t, err)

	approved, err := franchiseService.CreateFranchise(service.FranchiseMutation{
		Name:     "Approved One",
		Category: "food",
	})
	require.NoError(t, err)
	_, err = franchiseService.SetStatus(approved.ID, model.StatusActive)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/franchises", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	franchises := body["franchises"].([]interface{})
	require.Len(t, franchises, 1)
	assert.Equal(t, float64(approved.ID), franchises[0].(map[string]interface{})["id"])

	w = doJSON(t, router, http.MethodGet, "/franchises/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["count"])

	// Detail reads are not filtered by status
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/franchises/%d", pending.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
