package services

import (
	"errors"
	"time"

	"hotel-api/domain"
	"hotel-api/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) List(filters map[string]string, page, perPage int, includeRooms, includeServices bool) (*models.Page[models.Hotel], error) {
	q := s.DB.Model(&models.Hotel{})
	q = applyContainsFilters(q, filters)

	var preloads []string
	if includeRooms {
		preloads = append(preloads, "Rooms")
	}
	if includeServices {
		preloads = append(preloads, "Services")
	}
	return paginate[models.Hotel](q, preloads, page, perPage)
}

func (s *HotelService) All() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = nil
	if err := s.DB.Create(hotel).Error; err != nil {
		return duplicateError(err, "address", "phone", "email", "website")
	}
	return nil
}

func (s *HotelService) GetByID(id uint, includeRooms, includeServices bool) (*models.Hotel, error) {
	q := s.DB
	if includeRooms {
		q = q.Preload("Rooms")
	}
	if includeServices {
		q = q.Preload("Services")
	}

	var hotel models.Hotel
	if err := q.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Hotel", ID: id}
		}
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelService) Update(id uint, attrs map[string]interface{}) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Hotel", ID: id}
		}
		return nil, err
	}

	attrs["updated_at"] = time.Now()
	if err := s.DB.Model(&hotel).Updates(attrs).Error; err != nil {
		return nil, duplicateError(err, "address", "phone", "email", "website")
	}

	if err := s.DB.First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelService) Delete(id uint) error {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Entity: "Hotel", ID: id}
		}
		return err
	}

	if err := s.DB.Select("Rooms", "Services").Delete(&hotel).Error; err != nil {
		if isForeignKeyErr(err) {
			return domain.DeleteConflictError{Entity: "hotel", Err: err}
		}
		return err
	}
	return nil
}

// Rooms lists the rooms owned by a hotel.
func (s *HotelService) Rooms(id uint) ([]models.Room, error) {
	if _, err := s.GetByID(id, false, false); err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := s.DB.Where("hotel_id = ?", id).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Services lists the services attached to a hotel.
func (s *HotelService) Services(id uint) ([]models.Service, error) {
	hotel, err := s.GetByID(id, false, false)
	if err != nil {
		return nil, err
	}
	var attached []models.Service
	if err := s.DB.Model(hotel).Association("Services").Find(&attached); err != nil {
		return nil, err
	}
	return attached, nil
}

func (s *HotelService) attachedCount(hotelID, serviceID uint) (int64, error) {
	var count int64
	err := s.DB.Table("hotel_services").
		Where("hotel_id = ? AND service_id = ?", hotelID, serviceID).
		Count(&count).Error
	return count, err
}

// AttachService adds a hotel<->service join record. Attaching an already
// attached pair is reported as a conflict, not silently ignored.
func (s *HotelService) AttachService(hotelID, serviceID uint) error {
	hotel, err := s.GetByID(hotelID, false, false)
	if err != nil {
		return err
	}

	var service models.Service
	if err := s.DB.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Entity: "Service", ID: serviceID}
		}
		return err
	}

	count, err := s.attachedCount(hotelID, serviceID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.RelationshipConflictError{Msg: "the service is already attached to this hotel"}
	}

	return s.DB.Model(hotel).Association("Services").Append(&service)
}

// DetachService removes the join record; detaching a non-attached pair is a
// conflict.
func (s *HotelService) DetachService(hotelID, serviceID uint) error {
	hotel, err := s.GetByID(hotelID, false, false)
	if err != nil {
		return err
	}

	var service models.Service
	if err := s.DB.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Entity: "Service", ID: serviceID}
		}
		return err
	}

	count, err := s.attachedCount(hotelID, serviceID)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.RelationshipConflictError{Msg: "the service is not attached to this hotel"}
	}

	return s.DB.Model(hotel).Association("Services").Delete(&service)
}

// CreateCascade creates a hotel together with its rooms and services in one
// transaction. Services are matched by name and created when missing.
func (s *HotelService) CreateCascade(hotel *models.Hotel, rooms []models.Room, services []models.Service) (*models.Hotel, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		hotel.CreatedAt = time.Now()
		hotel.UpdatedAt = nil
		if err := tx.Create(hotel).Error; err != nil {
			return duplicateError(err, "address", "phone", "email", "website")
		}

		for i := range rooms {
			rooms[i].HotelID = hotel.ID
			rooms[i].CreatedAt = time.Now()
			rooms[i].UpdatedAt = nil
			if err := tx.Create(&rooms[i]).Error; err != nil {
				return err
			}
		}

		for i := range services {
			var svc models.Service
			err := tx.Where("name = ?", services[i].Name).First(&svc).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				svc = services[i]
				svc.CreatedAt = time.Now()
				svc.UpdatedAt = nil
				if err := tx.Create(&svc).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			if err := tx.Model(hotel).Association("Services").Append(&svc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(hotel.ID, true, true)
}
