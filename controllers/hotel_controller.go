package controllers

import (
	"net/http"

	"hotel-api/models"
	"hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// HotelStore is the persistence surface the hotel handlers depend on.
type HotelStore interface {
	List(filters map[string]string, page, perPage int, includeRooms, includeServices bool) (*models.Page[models.Hotel], error)
	All() ([]models.Hotel, error)
	Create(hotel *models.Hotel) error
	GetByID(id uint, includeRooms, includeServices bool) (*models.Hotel, error)
	Update(id uint, attrs map[string]interface{}) (*models.Hotel, error)
	Delete(id uint) error
	Rooms(id uint) ([]models.Room, error)
	Services(id uint) ([]models.Service, error)
	AttachService(hotelID, serviceID uint) error
	DetachService(hotelID, serviceID uint) error
	CreateCascade(hotel *models.Hotel, rooms []models.Room, services []models.Service) (*models.Hotel, error)
}

type HotelController struct {
	Hotels HotelStore
}

func NewHotelController(store HotelStore) *HotelController {
	return &HotelController{Hotels: store}
}

// Allow-listed filters: query param -> column, contains match.
var hotelFilters = map[string]string{
	"name":    "name",
	"address": "address",
	"phone":   "phone",
	"email":   "email",
	"website": "website",
}

type hotelPayload struct {
	Name    string `json:"name" binding:"required,min=5,max=50"`
	Address string `json:"address" binding:"required,min=5,max=100"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Email   string `json:"email" binding:"required,email"`
	Website string `json:"website" binding:"required,url"`
}

type hotelPatchPayload struct {
	Name    *string `json:"name" binding:"omitempty,min=5,max=50"`
	Address *string `json:"address" binding:"omitempty,min=5,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Website *string `json:"website" binding:"omitempty,url"`
}

func (p hotelPatchPayload) attrs() map[string]interface{} {
	attrs := map[string]interface{}{}
	if p.Name != nil {
		attrs["name"] = *p.Name
	}
	if p.Address != nil {
		attrs["address"] = *p.Address
	}
	if p.Phone != nil {
		attrs["phone"] = *p.Phone
	}
	if p.Email != nil {
		attrs["email"] = *p.Email
	}
	if p.Website != nil {
		attrs["website"] = *p.Website
	}
	return attrs
}

// GetHotels handles GET /api/hotels with filters, pagination and optional
// eager loading of rooms/services.
func (h *HotelController) GetHotels(c *gin.Context) {
	filters := utils.QueryFilters(c, hotelFilters)
	page, perPage := utils.PageParams(c)
	includeRooms := c.Query("includeRooms") == "true"
	includeServices := c.Query("includeServices") == "true"

	result, err := h.Hotels.List(filters, page, perPage, includeRooms, includeServices)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(result.Data) == 0 {
		utils.JSONNoResults(c, "No hotels have been found with the selected filters.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *HotelController) GetAllHotels(c *gin.Context) {
	hotels, err := h.Hotels.All()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *HotelController) CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if !bindJSON(c, &payload) {
		return
	}

	hotel := models.Hotel{
		Name:    payload.Name,
		Address: payload.Address,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Website: payload.Website,
	}
	if err := h.Hotels.Create(&hotel); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (h *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	hotel, err := h.Hotels.GetByID(id, c.Query("includeRooms") == "true", c.Query("includeServices") == "true")
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// UpdateHotel handles PUT: every field is required and replaced.
func (h *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var payload hotelPayload
	if !bindJSON(c, &payload) {
		return
	}

	hotel, err := h.Hotels.Update(id, map[string]interface{}{
		"name":    payload.Name,
		"address": payload.Address,
		"phone":   payload.Phone,
		"email":   payload.Email,
		"website": payload.Website,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// PatchHotel handles PATCH: only the provided fields change.
func (h *HotelController) PatchHotel(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var payload hotelPatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	hotel, err := h.Hotels.Update(id, payload.attrs())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	if err := h.Hotels.Delete(id); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Hotel deleted successfully")
}

func (h *HotelController) GetHotelRooms(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	rooms, err := h.Hotels.Rooms(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(rooms) == 0 {
		utils.JSONMessage(c, http.StatusNotFound, "This hotel has no rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *HotelController) GetHotelServices(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	services, err := h.Hotels.Services(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(services) == 0 {
		utils.JSONMessage(c, http.StatusNotFound, "This hotel has no services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *HotelController) AttachService(c *gin.Context) {
	hotelID, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	serviceID, ok := utils.IDParam(c, "serviceId")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := h.Hotels.AttachService(hotelID, serviceID); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service attached successfully")
}

func (h *HotelController) DetachService(c *gin.Context) {
	hotelID, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	serviceID, ok := utils.IDParam(c, "serviceId")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := h.Hotels.DetachService(hotelID, serviceID); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service detached successfully")
}

type cascadeRoomPayload struct {
	Number        string  `json:"number" binding:"required,max=10"`
	Type          string  `json:"type" binding:"required,min=5,max=20"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

type cascadeServicePayload struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Category    string `json:"category" binding:"omitempty,max=100"`
}

type cascadePayload struct {
	hotelPayload
	Rooms    []cascadeRoomPayload    `json:"rooms" binding:"omitempty,dive"`
	Services []cascadeServicePayload `json:"services" binding:"omitempty,dive"`
}

// CreateHotelCascade creates a hotel plus its rooms and services in one
// transaction and returns the hotel with both relations loaded.
func (h *HotelController) CreateHotelCascade(c *gin.Context) {
	var payload cascadePayload
	if !bindJSON(c, &payload) {
		return
	}

	hotel := models.Hotel{
		Name:    payload.Name,
		Address: payload.Address,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Website: payload.Website,
	}
	rooms := make([]models.Room, 0, len(payload.Rooms))
	for _, r := range payload.Rooms {
		rooms = append(rooms, models.Room{Number: r.Number, Type: r.Type, PricePerNight: r.PricePerNight})
	}
	services := make([]models.Service, 0, len(payload.Services))
	for _, s := range payload.Services {
		services = append(services, models.Service{Name: s.Name, Description: s.Description, Category: s.Category})
	}

	created, err := h.Hotels.CreateCascade(&hotel, rooms, services)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
