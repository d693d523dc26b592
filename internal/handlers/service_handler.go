package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

type ServiceHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

// BasePrice is a pointer so a free service (0.00) binds; Cost defaults to 0.
type serviceRequest struct {
	Designation   string   `json:"designation" binding:"required"`
	Description   string   `json:"description"`
	BasePrice     *float64 `json:"basePrice" binding:"required"`
	Cost          float64  `json:"cost"`
	ServiceTypeID string   `json:"serviceTypeId"`
	Active        *bool    `json:"active"`
}

func NewServiceHandler(db *gorm.DB, cfg config.Config) *ServiceHandler {
	return &ServiceHandler{DB: db, Cfg: cfg}
}

func (h *ServiceHandler) List(c *gin.Context) {
	query := h.DB.Preload("ServiceType").Order("created_at desc")
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var service models.Service
	if err := h.DB.Preload("ServiceType").First(&service, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "service not found")
		return
	}
	respondData(c, http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "designation and basePrice are required")
		return
	}
	if *req.BasePrice < 0 || req.Cost < 0 {
		respondError(c, http.StatusBadRequest, "basePrice and cost must not be negative")
		return
	}

	service := models.Service{
		Designation: req.Designation,
		Description: req.Description,
		BasePrice:   *req.BasePrice,
		Cost:        req.Cost,
		Active:      true,
	}
	if req.ServiceTypeID != "" {
		typeID, err := uuid.Parse(req.ServiceTypeID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid serviceTypeId")
			return
		}
		service.ServiceTypeID = &typeID
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.DB.Create(&service).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "designation and basePrice are required")
		return
	}
	if *req.BasePrice < 0 || req.Cost < 0 {
		respondError(c, http.StatusBadRequest, "basePrice and cost must not be negative")
		return
	}

	var service models.Service
	if err := h.DB.First(&service, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "service not found")
		return
	}

	service.Designation = req.Designation
	service.Description = req.Description
	service.BasePrice = *req.BasePrice
	service.Cost = req.Cost
	if req.ServiceTypeID != "" {
		typeID, err := uuid.Parse(req.ServiceTypeID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid serviceTypeId")
			return
		}
		service.ServiceTypeID = &typeID
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.DB.Save(&service).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	result := h.DB.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "service not found")
		return
	}
	respondMessage(c, http.StatusOK, "service deleted")
}
