package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services/billing"
)

type PaymentHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type paymentRequest struct {
	InvoiceID   string   `json:"invoiceId" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	PaymentDate string   `json:"paymentDate" binding:"required"`
	Method      string   `json:"method"`
	Notes       string   `json:"notes"`
}

func NewPaymentHandler(db *gorm.DB, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{DB: db, Cfg: cfg}
}

func (h *PaymentHandler) List(c *gin.Context) {
	query := h.DB.Preload("Invoice").Order("payment_date desc")
	if invoiceID := c.Query("invoiceId"); invoiceID != "" {
		id, err := uuid.Parse(invoiceID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid invoiceId")
			return
		}
		query = query.Where("invoice_id = ?", id)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, payments)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invoiceId, amount and paymentDate are required")
		return
	}

	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoiceId")
		return
	}
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid paymentDate, expected YYYY-MM-DD")
		return
	}

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}

	// No check against the invoice total: over- and underpayment are allowed.
	payment := models.Payment{
		InvoiceID:   invoiceID,
		Amount:      billing.RoundCurrency(*req.Amount),
		PaymentDate: paymentDate,
		Method:      req.Method,
		Notes:       req.Notes,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invoiceId, amount and paymentDate are required")
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid paymentDate, expected YYYY-MM-DD")
		return
	}

	var payment models.Payment
	if err := h.DB.First(&payment, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "payment not found")
		return
	}

	payment.Amount = billing.RoundCurrency(*req.Amount)
	payment.PaymentDate = paymentDate
	payment.Method = req.Method
	payment.Notes = req.Notes

	if err := h.DB.Save(&payment).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	result := h.DB.Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "payment not found")
		return
	}
	respondMessage(c, http.StatusOK, "payment deleted")
}
