package services

import (
	"errors"
	"time"

	"hotel-api/domain"
	"hotel-api/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List(filters map[string]string, page, perPage int) (*models.Page[models.Room], error) {
	q := s.DB.Model(&models.Room{})
	q = applyContainsFilters(q, filters)
	return paginate[models.Room](q, nil, page, perPage)
}

func (s *RoomService) All() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) hotelExists(tx *gorm.DB, hotelID uint) error {
	var count int64
	if err := tx.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.NotFoundError{Entity: "Hotel", ID: hotelID}
	}
	return nil
}

// Create inserts a room after verifying the owning hotel exists. The check
// runs before any row is written.
func (s *RoomService) Create(room *models.Room) error {
	if err := s.hotelExists(s.DB, room.HotelID); err != nil {
		return err
	}

	room.CreatedAt = time.Now()
	room.UpdatedAt = nil
	return s.DB.Create(room).Error
}

// CreateBulk inserts several rooms in one transaction; a missing hotel on any
// of them rolls back the whole batch.
func (s *RoomService) CreateBulk(rooms []models.Room) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rooms {
			if err := s.hotelExists(tx, rooms[i].HotelID); err != nil {
				return err
			}
			rooms[i].CreatedAt = time.Now()
			rooms[i].UpdatedAt = nil
			if err := tx.Create(&rooms[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Room", ID: id}
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, attrs map[string]interface{}) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if raw, ok := attrs["hotel_id"]; ok {
		if hotelID, ok := raw.(uint); ok {
			if err := s.hotelExists(s.DB, hotelID); err != nil {
				return nil, err
			}
		}
	}

	attrs["updated_at"] = time.Now()
	if err := s.DB.Model(room).Updates(attrs).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	room, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(room).Error; err != nil {
		if isForeignKeyErr(err) {
			return domain.DeleteConflictError{Entity: "room", Err: err}
		}
		return err
	}
	return nil
}

// Hotel returns the room's owning hotel.
func (s *RoomService) Hotel(roomID uint) (*models.Hotel, error) {
	room, err := s.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, room.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Hotel", ID: room.HotelID}
		}
		return nil, err
	}
	return &hotel, nil
}

// Guests returns the guests currently occupying the room.
func (s *RoomService) Guests(roomID uint) ([]models.Guest, error) {
	if _, err := s.GetByID(roomID); err != nil {
		return nil, err
	}

	var guests []models.Guest
	if err := s.DB.Where("room_id = ?", roomID).Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}
