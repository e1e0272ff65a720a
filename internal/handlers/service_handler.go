package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Duration    *int    `json:"duration"`
	ImageURL    *string `json:"imageUrl"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid service id")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "Service not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Created(c, "Service created successfully", svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid service id")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "Service not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OKMessage(c, "Service updated successfully", svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid service id")
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httpresp.Error(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, 404, "Service not found")
		return
	}

	httpresp.Message(c, "Service deleted successfully")
}
