package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/email"
	"portfolio-backend/internal/models"
)

type ContactHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func NewContactHandler(db *gorm.DB, cfg config.Config) *ContactHandler {
	return &ContactHandler{DB: db, Cfg: cfg}
}

// Submit is the only unauthenticated write endpoint. The notification mail is
// best-effort: an SMTP failure is logged and the submission still succeeds.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name, email and message are required")
		return
	}

	meta, _ := json.Marshal(map[string]string{
		"ip":        c.ClientIP(),
		"userAgent": c.Request.UserAgent(),
	})

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Meta:    datatypes.JSON(meta),
	}
	if err := h.DB.Create(&message).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}

	smtpCfg := email.Config{
		Host:     h.Cfg.SmtpHost,
		Port:     h.Cfg.SmtpPort,
		Username: h.Cfg.SmtpUser,
		Password: h.Cfg.SmtpPass,
		From:     h.Cfg.SmtpFrom,
	}
	if smtpCfg.Enabled() && h.Cfg.ContactNotifyTo != "" {
		if err := email.SendContactNotification(smtpCfg, h.Cfg.ContactNotifyTo, req.Name, req.Email, req.Subject, req.Message); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}

	respondMessage(c, http.StatusCreated, "message received")
}

func (h *ContactHandler) List(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if c.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, messages)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	var message models.ContactMessage
	if err := h.DB.First(&message, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "message not found")
		return
	}

	message.Read = true
	if err := h.DB.Save(&message).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, message)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	result := h.DB.Delete(&models.ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "message not found")
		return
	}
	respondMessage(c, http.StatusOK, "message deleted")
}
