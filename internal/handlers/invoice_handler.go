package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services/billing"
)

type InvoiceHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewInvoiceHandler(db *gorm.DB, cfg config.Config) *InvoiceHandler {
	return &InvoiceHandler{DB: db, Cfg: cfg}
}

// Pointer fields so a zero subtotal or a zero rate still binds; only an absent
// field fails validation.
type invoiceRequest struct {
	InvoiceNumber string   `json:"invoiceNumber"`
	ProjectID     string   `json:"projectId" binding:"required"`
	IssueDate     string   `json:"issueDate" binding:"required"`
	DueDate       string   `json:"dueDate" binding:"required"`
	SubTotal      *float64 `json:"subTotal" binding:"required"`
	VatRate       *int     `json:"vatRate" binding:"required"`
	Status        string   `json:"status"`
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var invoices []models.Invoice
	if err := h.DB.Preload("Project").Order("created_at desc").Find(&invoices).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var invoice models.Invoice
	if err := h.DB.Preload("Project").First(&invoice, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}
	respondData(c, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "projectId, issueDate, dueDate, subTotal and vatRate are required")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid projectId")
		return
	}
	issueDate, dueDate, err := parseInvoiceDates(req.IssueDate, req.DueDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var project models.Project
	if err := h.DB.First(&project, "id = ?", projectID).Error; err != nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}

	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = uuid.New().String()
	}

	vatAmount, total := billing.ComputeTotals(*req.SubTotal, *req.VatRate)
	invoice := models.Invoice{
		InvoiceNumber: invoiceNumber,
		ProjectID:     projectID,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		SubTotal:      billing.RoundCurrency(*req.SubTotal),
		VatRate:       *req.VatRate,
		VatAmount:     vatAmount,
		Total:         total,
	}
	if req.Status != "" {
		invoice.Status = req.Status
	}

	if err := h.DB.Create(&invoice).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}

	respondData(c, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "projectId, issueDate, dueDate, subTotal and vatRate are required")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid projectId")
		return
	}
	issueDate, dueDate, err := parseInvoiceDates(req.IssueDate, req.DueDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}

	invoice.ProjectID = projectID
	invoice.IssueDate = issueDate
	invoice.DueDate = dueDate
	invoice.SubTotal = billing.RoundCurrency(*req.SubTotal)
	invoice.VatRate = *req.VatRate
	invoice.VatAmount, invoice.Total = billing.ComputeTotals(*req.SubTotal, *req.VatRate)
	if req.InvoiceNumber != "" {
		invoice.InvoiceNumber = req.InvoiceNumber
	}
	if req.Status != "" {
		invoice.Status = req.Status
	}

	if err := h.DB.Save(&invoice).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}

	respondData(c, http.StatusOK, invoice)
}

// MarkPaid flips the paid flag; totals stay untouched since payments are not
// reconciled against them.
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "invoice not found")
		return
	}

	invoice.Paid = true
	invoice.Status = "paid"
	if err := h.DB.Save(&invoice).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}

	respondData(c, http.StatusOK, invoice)
}

func parseInvoiceDates(issue, due string) (time.Time, time.Time, error) {
	issueDate, err := time.Parse("2006-01-02", issue)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid issueDate, expected YYYY-MM-DD")
	}
	dueDate, err := time.Parse("2006-01-02", due)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid dueDate, expected YYYY-MM-DD")
	}
	return issueDate, dueDate, nil
}
