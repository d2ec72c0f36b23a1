package controllers

import (
	"net/http"
	"testing"

	"hotel-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceRouter(store ServiceStore) *gin.Engine {
	sc := NewServiceController(store)
	r := gin.New()
	r.GET("/api/services", sc.GetServices)
	r.GET("/api/services/:id/hotels", sc.GetServiceHotels)
	return r
}

func TestGetServicesNoMatchesUsesNoResultsShape(t *testing.T) {
	w := doJSON(t, newServiceRouter(&fakeServiceStore{}), http.MethodGet, "/api/services?name=nope", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "No services have been found with the selected filters.", body["message"])
	assert.Equal(t, float64(404), body["code"])
}

func TestGetServiceHotelsEmptyIs404(t *testing.T) {
	w := doJSON(t, newServiceRouter(&fakeServiceStore{}), http.MethodGet, "/api/services/2/hotels", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "This service is not attached to any hotel", decodeBody(t, w)["message"])
}

func TestGetServiceHotelsListsAttachedHotels(t *testing.T) {
	store := &fakeServiceStore{
		hotels: func(id uint) ([]models.Hotel, error) {
			return []models.Hotel{{ID: 1, Name: "Grand Plaza"}}, nil
		},
	}
	w := doJSON(t, newServiceRouter(store), http.MethodGet, "/api/services/2/hotels", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grand Plaza")
}
