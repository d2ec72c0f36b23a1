package services

import (
	"errors"
	"time"

	"hotel-api/domain"
	"hotel-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) List(filters map[string]string, page, perPage int) (*models.Page[models.Guest], error) {
	q := s.DB.Model(&models.Guest{})
	q = applyContainsFilters(q, filters)
	return paginate[models.Guest](q, nil, page, perPage)
}

func (s *GuestService) All() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.CreatedAt = time.Now()
	guest.UpdatedAt = nil
	if err := s.DB.Create(guest).Error; err != nil {
		return duplicateError(err, "document")
	}
	return nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Guest", ID: id}
		}
		return nil, err
	}
	return &guest, nil
}

// Update applies a generic attribute update. The current stay and its
// timestamps belong to Reserve/Checkout, never to this path.
func (s *GuestService) Update(id uint, attrs map[string]interface{}) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	delete(attrs, "room_id")
	delete(attrs, "check_in_at")
	delete(attrs, "check_out_at")

	attrs["updated_at"] = time.Now()
	if err := s.DB.Model(guest).Updates(attrs).Error; err != nil {
		return nil, duplicateError(err, "document")
	}

	return s.GetByID(id)
}

func (s *GuestService) Delete(id uint) error {
	guest, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(guest).Error
}

// Room returns the guest's current room, or nil when the guest has no active
// reservation.
func (s *GuestService) Room(guestID uint) (*models.Room, error) {
	guest, err := s.GetByID(guestID)
	if err != nil {
		return nil, err
	}
	if guest.RoomID == nil {
		return nil, nil
	}

	var room models.Room
	if err := s.DB.First(&room, *guest.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Room", ID: *guest.RoomID}
		}
		return nil, err
	}
	return &room, nil
}

// Reserve assigns a room to a guest and stamps the check-in time. The
// capacity check and the assignment run in one transaction with the room row
// locked, so two concurrent reservations cannot oversell the room.
func (s *GuestService) Reserve(guestID, roomID uint) (*models.Guest, error) {
	guest, err := s.GetByID(guestID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Entity: "Room", ID: roomID}
			}
			return err
		}

		var occupants int64
		if err := tx.Model(&models.Guest{}).Where("room_id = ?", room.ID).Count(&occupants).Error; err != nil {
			return err
		}
		if !domain.IsAvailable(room.Type, int(occupants)) {
			return domain.RoomUnavailableError{RoomID: room.ID}
		}

		now := time.Now()
		// check_out_at is deliberately left untouched.
		if err := tx.Model(guest).Updates(map[string]interface{}{
			"room_id":     room.ID,
			"check_in_at": now,
			"updated_at":  now,
		}).Error; err != nil {
			return err
		}

		guest.RoomID = &room.ID
		guest.CheckInAt = &now
		guest.UpdatedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return guest, nil
}

// Checkout stamps the check-out time and releases the guest's room. The
// released flag is false when the guest had no room to release; that outcome
// is benign, not an error.
func (s *GuestService) Checkout(guestID uint) (*models.Guest, bool, error) {
	guest, err := s.GetByID(guestID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	if err := s.DB.Model(guest).Updates(map[string]interface{}{
		"check_out_at": now,
		"updated_at":   now,
	}).Error; err != nil {
		return nil, false, err
	}
	guest.CheckOutAt = &now
	guest.UpdatedAt = &now

	if guest.RoomID == nil {
		return guest, false, nil
	}

	if err := s.DB.Model(guest).Update("room_id", nil).Error; err != nil {
		return nil, false, err
	}
	guest.RoomID = nil
	return guest, true, nil
}
