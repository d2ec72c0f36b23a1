package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hotel-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// doJSON sends a request with an optional JSON body through the given engine
// and returns the recorded response.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// fakeGuestStore satisfies GuestStore with per-test function fields. Unset
// fields answer with zero values.
type fakeGuestStore struct {
	list     func(filters map[string]string, page, perPage int) (*models.Page[models.Guest], error)
	create   func(guest *models.Guest) error
	getByID  func(id uint) (*models.Guest, error)
	update   func(id uint, attrs map[string]interface{}) (*models.Guest, error)
	room     func(guestID uint) (*models.Room, error)
	reserve  func(guestID, roomID uint) (*models.Guest, error)
	checkout func(guestID uint) (*models.Guest, bool, error)
}

func (f *fakeGuestStore) List(filters map[string]string, page, perPage int) (*models.Page[models.Guest], error) {
	if f.list != nil {
		return f.list(filters, page, perPage)
	}
	return &models.Page[models.Guest]{}, nil
}

func (f *fakeGuestStore) All() ([]models.Guest, error) { return nil, nil }

func (f *fakeGuestStore) Create(guest *models.Guest) error {
	if f.create != nil {
		return f.create(guest)
	}
	return nil
}

func (f *fakeGuestStore) GetByID(id uint) (*models.Guest, error) {
	if f.getByID != nil {
		return f.getByID(id)
	}
	return &models.Guest{ID: id}, nil
}

func (f *fakeGuestStore) Update(id uint, attrs map[string]interface{}) (*models.Guest, error) {
	if f.update != nil {
		return f.update(id, attrs)
	}
	return &models.Guest{ID: id}, nil
}

func (f *fakeGuestStore) Delete(id uint) error { return nil }

func (f *fakeGuestStore) Room(guestID uint) (*models.Room, error) {
	if f.room != nil {
		return f.room(guestID)
	}
	return nil, nil
}

func (f *fakeGuestStore) Reserve(guestID, roomID uint) (*models.Guest, error) {
	if f.reserve != nil {
		return f.reserve(guestID, roomID)
	}
	return &models.Guest{ID: guestID}, nil
}

func (f *fakeGuestStore) Checkout(guestID uint) (*models.Guest, bool, error) {
	if f.checkout != nil {
		return f.checkout(guestID)
	}
	return &models.Guest{ID: guestID}, false, nil
}

// fakeHotelStore satisfies HotelStore the same way.
type fakeHotelStore struct {
	list          func(filters map[string]string, page, perPage int, includeRooms, includeServices bool) (*models.Page[models.Hotel], error)
	create        func(hotel *models.Hotel) error
	getByID       func(id uint, includeRooms, includeServices bool) (*models.Hotel, error)
	rooms         func(id uint) ([]models.Room, error)
	services      func(id uint) ([]models.Service, error)
	attachService func(hotelID, serviceID uint) error
	detachService func(hotelID, serviceID uint) error
	createCascade func(hotel *models.Hotel, rooms []models.Room, services []models.Service) (*models.Hotel, error)
}

func (f *fakeHotelStore) List(filters map[string]string, page, perPage int, includeRooms, includeServices bool) (*models.Page[models.Hotel], error) {
	if f.list != nil {
		return f.list(filters, page, perPage, includeRooms, includeServices)
	}
	return &models.Page[models.Hotel]{}, nil
}

func (f *fakeHotelStore) All() ([]models.Hotel, error) { return nil, nil }

func (f *fakeHotelStore) Create(hotel *models.Hotel) error {
	if f.create != nil {
		return f.create(hotel)
	}
	return nil
}

func (f *fakeHotelStore) GetByID(id uint, includeRooms, includeServices bool) (*models.Hotel, error) {
	if f.getByID != nil {
		return f.getByID(id, includeRooms, includeServices)
	}
	return &models.Hotel{ID: id}, nil
}

func (f *fakeHotelStore) Update(id uint, attrs map[string]interface{}) (*models.Hotel, error) {
	return &models.Hotel{ID: id}, nil
}

func (f *fakeHotelStore) Delete(id uint) error { return nil }

func (f *fakeHotelStore) Rooms(id uint) ([]models.Room, error) {
	if f.rooms != nil {
		return f.rooms(id)
	}
	return nil, nil
}

func (f *fakeHotelStore) Services(id uint) ([]models.Service, error) {
	if f.services != nil {
		return f.services(id)
	}
	return nil, nil
}

func (f *fakeHotelStore) AttachService(hotelID, serviceID uint) error {
	if f.attachService != nil {
		return f.attachService(hotelID, serviceID)
	}
	return nil
}

func (f *fakeHotelStore) DetachService(hotelID, serviceID uint) error {
	if f.detachService != nil {
		return f.detachService(hotelID, serviceID)
	}
	return nil
}

func (f *fakeHotelStore) CreateCascade(hotel *models.Hotel, rooms []models.Room, services []models.Service) (*models.Hotel, error) {
	if f.createCascade != nil {
		return f.createCascade(hotel, rooms, services)
	}
	return hotel, nil
}

// fakeRoomStore satisfies RoomStore.
type fakeRoomStore struct {
	create     func(room *models.Room) error
	createBulk func(rooms []models.Room) error
	guests     func(roomID uint) ([]models.Guest, error)
}

func (f *fakeRoomStore) List(filters map[string]string, page, perPage int) (*models.Page[models.Room], error) {
	return &models.Page[models.Room]{}, nil
}

func (f *fakeRoomStore) All() ([]models.Room, error) { return nil, nil }

func (f *fakeRoomStore) Create(room *models.Room) error {
	if f.create != nil {
		return f.create(room)
	}
	return nil
}

func (f *fakeRoomStore) CreateBulk(rooms []models.Room) error {
	if f.createBulk != nil {
		return f.createBulk(rooms)
	}
	return nil
}

func (f *fakeRoomStore) GetByID(id uint) (*models.Room, error) { return &models.Room{ID: id}, nil }

func (f *fakeRoomStore) Update(id uint, attrs map[string]interface{}) (*models.Room, error) {
	return &models.Room{ID: id}, nil
}

func (f *fakeRoomStore) Delete(id uint) error { return nil }

func (f *fakeRoomStore) Hotel(roomID uint) (*models.Hotel, error) { return nil, nil }

func (f *fakeRoomStore) Guests(roomID uint) ([]models.Guest, error) {
	if f.guests != nil {
		return f.guests(roomID)
	}
	return nil, nil
}

// fakeServiceStore satisfies ServiceStore.
type fakeServiceStore struct {
	list   func(filters map[string]string, page, perPage int, includeHotels bool) (*models.Page[models.Service], error)
	hotels func(id uint) ([]models.Hotel, error)
}

func (f *fakeServiceStore) List(filters map[string]string, page, perPage int, includeHotels bool) (*models.Page[models.Service], error) {
	if f.list != nil {
		return f.list(filters, page, perPage, includeHotels)
	}
	return &models.Page[models.Service]{}, nil
}

func (f *fakeServiceStore) All() ([]models.Service, error) { return nil, nil }

func (f *fakeServiceStore) Create(service *models.Service) error { return nil }

func (f *fakeServiceStore) GetByID(id uint, includeHotels bool) (*models.Service, error) {
	return &models.Service{ID: id}, nil
}

func (f *fakeServiceStore) Update(id uint, attrs map[string]interface{}) (*models.Service, error) {
	return &models.Service{ID: id}, nil
}

func (f *fakeServiceStore) Delete(id uint) error { return nil }

func (f *fakeServiceStore) Hotels(id uint) ([]models.Hotel, error) {
	if f.hotels != nil {
		return f.hotels(id)
	}
	return nil, nil
}
