package services

import (
	"errors"
	"time"

	"hotel-api/domain"
	"hotel-api/models"

	"gorm.io/gorm"
)

type ServiceService struct {
	DB *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db}
}

func (s *ServiceService) List(filters map[string]string, page, perPage int, includeHotels bool) (*models.Page[models.Service], error) {
	q := s.DB.Model(&models.Service{})
	q = applyContainsFilters(q, filters)

	var preloads []string
	if includeHotels {
		preloads = append(preloads, "Hotels")
	}
	return paginate[models.Service](q, preloads, page, perPage)
}

func (s *ServiceService) All() ([]models.Service, error) {
	var services []models.Service
	if err := s.DB.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *ServiceService) Create(service *models.Service) error {
	service.CreatedAt = time.Now()
	service.UpdatedAt = nil
	return s.DB.Create(service).Error
}

func (s *ServiceService) GetByID(id uint, includeHotels bool) (*models.Service, error) {
	q := s.DB
	if includeHotels {
		q = q.Preload("Hotels")
	}

	var service models.Service
	if err := q.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "Service", ID: id}
		}
		return nil, err
	}
	return &service, nil
}

func (s *ServiceService) Update(id uint, attrs map[string]interface{}) (*models.Service, error) {
	service, err := s.GetByID(id, false)
	if err != nil {
		return nil, err
	}

	attrs["updated_at"] = time.Now()
	if err := s.DB.Model(service).Updates(attrs).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id, false)
}

func (s *ServiceService) Delete(id uint) error {
	service, err := s.GetByID(id, false)
	if err != nil {
		return err
	}

	if err := s.DB.Select("Hotels").Delete(service).Error; err != nil {
		if isForeignKeyErr(err) {
			return domain.DeleteConflictError{Entity: "service", Err: err}
		}
		return err
	}
	return nil
}

// Hotels lists the hotels a service is attached to.
func (s *ServiceService) Hotels(id uint) ([]models.Hotel, error) {
	service, err := s.GetByID(id, false)
	if err != nil {
		return nil, err
	}

	var hotels []models.Hotel
	if err := s.DB.Model(service).Association("Hotels").Find(&hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}
