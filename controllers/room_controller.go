package controllers

import (
	"net/http"

	"hotel-api/models"
	"hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// RoomStore is the persistence surface the room handlers depend on.
type RoomStore interface {
	List(filters map[string]string, page, perPage int) (*models.Page[models.Room], error)
	All() ([]models.Room, error)
	Create(room *models.Room) error
	CreateBulk(rooms []models.Room) error
	GetByID(id uint) (*models.Room, error)
	Update(id uint, attrs map[string]interface{}) (*models.Room, error)
	Delete(id uint) error
	Hotel(roomID uint) (*models.Hotel, error)
	Guests(roomID uint) ([]models.Guest, error)
}

type RoomController struct {
	Rooms RoomStore
}

func NewRoomController(store RoomStore) *RoomController {
	return &RoomController{Rooms: store}
}

var roomFilters = map[string]string{
	"number":   "number",
	"type":     "type",
	"price":    "price_per_night",
	"hotel_id": "hotel_id",
}

type roomPayload struct {
	Number        string  `json:"number" binding:"required,max=10"`
	Type          string  `json:"type" binding:"required,min=5,max=20"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	HotelID       uint    `json:"hotel_id" binding:"required"`
}

type roomPatchPayload struct {
	Number        *string  `json:"number" binding:"omitempty,max=10"`
	Type          *string  `json:"type" binding:"omitempty,min=5,max=20"`
	PricePerNight *float64 `json:"price_per_night" binding:"omitempty,gt=0"`
	HotelID       *uint    `json:"hotel_id" binding:"omitempty"`
}

func (p roomPatchPayload) attrs() map[string]interface{} {
	attrs := map[string]interface{}{}
	if p.Number != nil {
		attrs["number"] = *p.Number
	}
	if p.Type != nil {
		attrs["type"] = *p.Type
	}
	if p.PricePerNight != nil {
		attrs["price_per_night"] = *p.PricePerNight
	}
	if p.HotelID != nil {
		attrs["hotel_id"] = *p.HotelID
	}
	return attrs
}

func (r *RoomController) GetRooms(c *gin.Context) {
	filters := utils.QueryFilters(c, roomFilters)
	page, perPage := utils.PageParams(c)

	result, err := r.Rooms.List(filters, page, perPage)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(result.Data) == 0 {
		utils.JSONNoResults(c, "No rooms have been found with the selected filters.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (r *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := r.Rooms.All()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom rejects the request with HotelNotFound before writing anything
// when hotel_id does not resolve.
func (r *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if !bindJSON(c, &payload) {
		return
	}

	room := models.Room{
		Number:        payload.Number,
		Type:          payload.Type,
		PricePerNight: payload.PricePerNight,
		HotelID:       payload.HotelID,
	}
	if err := r.Rooms.Create(&room); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (r *RoomController) CreateRoomsBulk(c *gin.Context) {
	var payload struct {
		Rooms []roomPayload `json:"rooms" binding:"required,min=1,dive"`
	}
	if !bindJSON(c, &payload) {
		return
	}

	rooms := make([]models.Room, 0, len(payload.Rooms))
	for _, p := range payload.Rooms {
		rooms = append(rooms, models.Room{
			Number:        p.Number,
			Type:          p.Type,
			PricePerNight: p.PricePerNight,
			HotelID:       p.HotelID,
		})
	}
	if err := r.Rooms.CreateBulk(rooms); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rooms created successfully", "data": rooms})
}

func (r *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := r.Rooms.GetByID(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (r *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var payload roomPayload
	if !bindJSON(c, &payload) {
		return
	}

	room, err := r.Rooms.Update(id, map[string]interface{}{
		"number":          payload.Number,
		"type":            payload.Type,
		"price_per_night": payload.PricePerNight,
		"hotel_id":        payload.HotelID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (r *RoomController) PatchRoom(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var payload roomPatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	room, err := r.Rooms.Update(id, payload.attrs())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (r *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := r.Rooms.Delete(id); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully")
}

func (r *RoomController) GetRoomHotel(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	hotel, err := r.Rooms.Hotel(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (r *RoomController) GetRoomGuests(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	guests, err := r.Rooms.Guests(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(guests) == 0 {
		utils.JSONMessage(c, http.StatusOK, "This room has no guests")
		return
	}
	c.JSON(http.StatusOK, guests)
}
