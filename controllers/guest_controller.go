package controllers

import (
	"fmt"
	"net/http"

	"hotel-api/models"
	"hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// GuestStore is the persistence surface the guest handlers depend on. It
// includes the reservation workflow, which owns the guest's current stay.
type GuestStore interface {
	List(filters map[string]string, page, perPage int) (*models.Page[models.Guest], error)
	All() ([]models.Guest, error)
	Create(guest *models.Guest) error
	GetByID(id uint) (*models.Guest, error)
	Update(id uint, attrs map[string]interface{}) (*models.Guest, error)
	Delete(id uint) error
	Room(guestID uint) (*models.Room, error)
	Reserve(guestID, roomID uint) (*models.Guest, error)
	Checkout(guestID uint) (*models.Guest, bool, error)
}

type GuestController struct {
	Guests GuestStore
}

func NewGuestController(store GuestStore) *GuestController {
	return &GuestController{Guests: store}
}

var guestFilters = map[string]string{
	"first_name":   "first_name",
	"last_name":    "last_name",
	"document":     "document",
	"check_in_at":  "check_in_at",
	"check_out_at": "check_out_at",
	"room_id":      "room_id",
}

type guestPayload struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Document  string `json:"document" binding:"required,len=9"`
}

type guestPatchPayload struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Document  *string `json:"document" binding:"omitempty,len=9"`
}

func (p guestPatchPayload) attrs() map[string]interface{} {
	attrs := map[string]interface{}{}
	if p.FirstName != nil {
		attrs["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		attrs["last_name"] = *p.LastName
	}
	if p.Document != nil {
		attrs["document"] = *p.Document
	}
	return attrs
}

func (g *GuestController) GetGuests(c *gin.Context) {
	filters := utils.QueryFilters(c, guestFilters)
	page, perPage := utils.PageParams(c)

	result, err := g.Guests.List(filters, page, perPage)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(result.Data) == 0 {
		utils.JSONNoResults(c, "No guests have been found with the selected filters.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (g *GuestController) GetAllGuests(c *gin.Context) {
	guests, err := g.Guests.All()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (g *GuestController) CreateGuest(c *gin.Context) {
	var payload guestPayload
	if !bindJSON(c, &payload) {
		return
	}

	guest := models.Guest{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Document:  payload.Document,
	}
	if err := g.Guests.Create(&guest); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

func (g *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	guest, err := g.Guests.GetByID(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (g *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	var payload guestPayload
	if !bindJSON(c, &payload) {
		return
	}

	guest, err := g.Guests.Update(id, map[string]interface{}{
		"first_name": payload.FirstName,
		"last_name":  payload.LastName,
		"document":   payload.Document,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (g *GuestController) PatchGuest(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	var payload guestPatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	guest, err := g.Guests.Update(id, payload.attrs())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (g *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	if err := g.Guests.Delete(id); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Guest deleted successfully")
}

// GetGuestRoom returns the guest's current room, or null when the guest has
// no active reservation.
func (g *GuestController) GetGuestRoom(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	room, err := g.Guests.Room(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ReserveRoom assigns a room to a guest when the room still has capacity.
func (g *GuestController) ReserveRoom(c *gin.Context) {
	guestID, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}
	roomID, ok := utils.IDParam(c, "roomId")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid room id")
		return
	}

	guest, err := g.Guests.Reserve(guestID, roomID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// CheckoutGuest stamps the check-out time and releases the room. A guest
// without a room gets a benign message, not an error.
func (g *GuestController) CheckoutGuest(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	guest, released, err := g.Guests.Checkout(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !released {
		utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Guest %s has no reserved room.", guest.FirstName))
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Check-out registered and room released.")
}
