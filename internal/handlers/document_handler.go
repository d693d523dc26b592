package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

type DocumentHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type documentRequest struct {
	Name      string          `json:"name" binding:"required"`
	FilePath  string          `json:"filePath" binding:"required"`
	MimeType  string          `json:"mimeType"`
	SizeBytes int64           `json:"sizeBytes"`
	ProjectID string          `json:"projectId"`
	ClientID  string          `json:"clientId"`
	Metadata  json.RawMessage `json:"metadata"`
}

func NewDocumentHandler(db *gorm.DB, cfg config.Config) *DocumentHandler {
	return &DocumentHandler{DB: db, Cfg: cfg}
}

func (h *DocumentHandler) List(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		id, err := uuid.Parse(projectID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid projectId")
			return
		}
		query = query.Where("project_id = ?", id)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		id, err := uuid.Parse(clientID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid clientId")
			return
		}
		query = query.Where("client_id = ?", id)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, documents)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name and filePath are required")
		return
	}

	document := models.Document{
		Name:      req.Name,
		FilePath:  req.FilePath,
		MimeType:  req.MimeType,
		SizeBytes: req.SizeBytes,
	}
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid projectId")
			return
		}
		document.ProjectID = &id
	}
	if req.ClientID != "" {
		id, err := uuid.Parse(req.ClientID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid clientId")
			return
		}
		document.ClientID = &id
	}
	if len(req.Metadata) > 0 {
		document.Metadata = datatypes.JSON(req.Metadata)
	}

	if err := h.DB.Create(&document).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, document)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid document id")
		return
	}

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name and filePath are required")
		return
	}

	var document models.Document
	if err := h.DB.First(&document, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "document not found")
		return
	}

	document.Name = req.Name
	document.FilePath = req.FilePath
	document.MimeType = req.MimeType
	document.SizeBytes = req.SizeBytes
	if len(req.Metadata) > 0 {
		document.Metadata = datatypes.JSON(req.Metadata)
	}

	if err := h.DB.Save(&document).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, document)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid document id")
		return
	}

	result := h.DB.Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "document not found")
		return
	}
	respondMessage(c, http.StatusOK, "document deleted")
}
