package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

type ClientHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type clientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	TaxNumber    string `json:"taxNumber"`
	ClientTypeID string `json:"clientTypeId"`
}

func NewClientHandler(db *gorm.DB, cfg config.Config) *ClientHandler {
	return &ClientHandler{DB: db, Cfg: cfg}
}

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.DB.Preload("ClientType").Order("created_at desc").Find(&clients).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	var client models.Client
	if err := h.DB.Preload("ClientType").First(&client, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "client not found")
		return
	}
	respondData(c, http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	client := models.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
		Active:    true,
	}
	if req.ClientTypeID != "" {
		typeID, err := uuid.Parse(req.ClientTypeID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid clientTypeId")
			return
		}
		client.ClientTypeID = &typeID
	}

	if err := h.DB.Create(&client).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	var client models.Client
	if err := h.DB.First(&client, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "client not found")
		return
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.TaxNumber = req.TaxNumber
	if req.ClientTypeID != "" {
		typeID, err := uuid.Parse(req.ClientTypeID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid clientTypeId")
			return
		}
		client.ClientTypeID = &typeID
	}

	if err := h.DB.Save(&client).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	result := h.DB.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "client not found")
		return
	}
	respondMessage(c, http.StatusOK, "client deleted")
}
