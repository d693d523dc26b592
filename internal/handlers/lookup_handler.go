package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

// ClientTypeHandler and ServiceTypeHandler manage the two designation lookup
// tables; ProjectStateHandler exposes the seeded state rows read-only.

type ClientTypeHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type designationRequest struct {
	Designation string `json:"designation" binding:"required"`
}

func NewClientTypeHandler(db *gorm.DB, cfg config.Config) *ClientTypeHandler {
	return &ClientTypeHandler{DB: db, Cfg: cfg}
}

func (h *ClientTypeHandler) List(c *gin.Context) {
	var types []models.ClientType
	if err := h.DB.Order("designation asc").Find(&types).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, types)
}

func (h *ClientTypeHandler) Create(c *gin.Context) {
	var req designationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "designation is required")
		return
	}

	clientType := models.ClientType{Designation: req.Designation}
	if err := h.DB.Create(&clientType).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, clientType)
}

func (h *ClientTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client type id")
		return
	}

	var req designationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "designation is required")
		return
	}

	var clientType models.ClientType
	if err := h.DB.First(&clientType, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "client type not found")
		return
	}

	clientType.Designation = req.Designation
	if err := h.DB.Save(&clientType).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, clientType)
}

func (h *ClientTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client type id")
		return
	}

	result := h.DB.Delete(&models.ClientType{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "client type not found")
		return
	}
	respondMessage(c, http.StatusOK, "client type deleted")
}

type ServiceTypeHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewServiceTypeHandler(db *gorm.DB, cfg config.Config) *ServiceTypeHandler {
	return &ServiceTypeHandler{DB: db, Cfg: cfg}
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	var types []models.ServiceType
	if err := h.DB.Order("designation asc").Find(&types).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, types)
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req designationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "designation is required")
		return
	}

	serviceType := models.ServiceType{Designation: req.Designation}
	if err := h.DB.Create(&serviceType).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, serviceType)
}

func (h *ServiceTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service type id")
		return
	}

	var req designationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "designation is required")
		return
	}

	var serviceType models.ServiceType
	if err := h.DB.First(&serviceType, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "service type not found")
		return
	}

	serviceType.Designation = req.Designation
	if err := h.DB.Save(&serviceType).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, serviceType)
}

func (h *ServiceTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service type id")
		return
	}

	result := h.DB.Delete(&models.ServiceType{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "service type not found")
		return
	}
	respondMessage(c, http.StatusOK, "service type deleted")
}

type ProjectStateHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewProjectStateHandler(db *gorm.DB, cfg config.Config) *ProjectStateHandler {
	return &ProjectStateHandler{DB: db, Cfg: cfg}
}

func (h *ProjectStateHandler) List(c *gin.Context) {
	var states []models.ProjectState
	if err := h.DB.Order("created_at asc").Find(&states).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, states)
}
