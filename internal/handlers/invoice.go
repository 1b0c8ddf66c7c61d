package handlers

import (
	"net/http"

	"github.com/mstolarz/fakturo/auth"
	"github.com/mstolarz/fakturo/httpx"
	"github.com/mstolarz/fakturo/internal/models"
	"gorm.io/gorm"
)

// InvoiceHandler exposes read-only invoice listing. Invoices are created
// and mutated by the invoicing module; the directory only reads them.
type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

// List: GET /invoices – optionally filtered by client via ?clientId=
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	q := h.db.Where("user_id = ?", userID)
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var invoices []models.Invoice
	if err := q.Order("id desc").Find(&invoices).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_invoices", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}
