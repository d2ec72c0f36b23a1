package controllers

import (
	"net/http"

	"hotel-api/models"
	"hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// ServiceStore is the persistence surface the service handlers depend on.
type ServiceStore interface {
	List(filters map[string]string, page, perPage int, includeHotels bool) (*models.Page[models.Service], error)
	All() ([]models.Service, error)
	Create(service *models.Service) error
	GetByID(id uint, includeHotels bool) (*models.Service, error)
	Update(id uint, attrs map[string]interface{}) (*models.Service, error)
	Delete(id uint) error
	Hotels(id uint) ([]models.Hotel, error)
}

type ServiceController struct {
	Services ServiceStore
}

func NewServiceController(store ServiceStore) *ServiceController {
	return &ServiceController{Services: store}
}

var serviceFilters = map[string]string{
	"name":        "name",
	"description": "description",
	"category":    "category",
}

type servicePayload struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"required,min=5,max=500"`
	Category    string `json:"category" binding:"required,min=5"`
}

type servicePatchPayload struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=50"`
	Description *string `json:"description" binding:"omitempty,min=5,max=500"`
	Category    *string `json:"category" binding:"omitempty,min=5"`
}

func (p servicePatchPayload) attrs() map[string]interface{} {
	attrs := map[string]interface{}{}
	if p.Name != nil {
		attrs["name"] = *p.Name
	}
	if p.Description != nil {
		attrs["description"] = *p.Description
	}
	if p.Category != nil {
		attrs["category"] = *p.Category
	}
	return attrs
}

func (s *ServiceController) GetServices(c *gin.Context) {
	filters := utils.QueryFilters(c, serviceFilters)
	page, perPage := utils.PageParams(c)
	includeHotels := c.Query("includeHotels") == "true"

	result, err := s.Services.List(filters, page, perPage, includeHotels)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(result.Data) == 0 {
		utils.JSONNoResults(c, "No services have been found with the selected filters.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *ServiceController) GetAllServices(c *gin.Context) {
	services, err := s.Services.All()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (s *ServiceController) CreateService(c *gin.Context) {
	var payload servicePayload
	if !bindJSON(c, &payload) {
		return
	}

	service := models.Service{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
	}
	if err := s.Services.Create(&service); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (s *ServiceController) GetServiceByID(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	service, err := s.Services.GetByID(id, c.Query("includeHotels") == "true")
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (s *ServiceController) UpdateService(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var payload servicePayload
	if !bindJSON(c, &payload) {
		return
	}

	service, err := s.Services.Update(id, map[string]interface{}{
		"name":        payload.Name,
		"description": payload.Description,
		"category":    payload.Category,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (s *ServiceController) PatchService(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var payload servicePatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	service, err := s.Services.Update(id, payload.attrs())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (s *ServiceController) DeleteService(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := s.Services.Delete(id); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service deleted successfully")
}

func (s *ServiceController) GetServiceHotels(c *gin.Context) {
	id, ok := utils.IDParam(c, "id")
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid service id")
		return
	}

	hotels, err := s.Services.Hotels(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(hotels) == 0 {
		utils.JSONMessage(c, http.StatusNotFound, "This service is not attached to any hotel")
		return
	}
	c.JSON(http.StatusOK, hotels)
}
