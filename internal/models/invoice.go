package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
)

// Invoice references a client through ClientID. The client directory only
// cares whether any invoice still points at a client; the invoice lifecycle
// itself is managed elsewhere.
type Invoice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	ClientID   string    `gorm:"size:36;not null;index" json:"clientId"`
	Number     string    `gorm:"size:50" json:"number"`
	Status     string    `gorm:"size:20;not null;default:'draft'" json:"status"`
	IssueDate  time.Time `json:"issueDate"`
	DueDate    time.Time `json:"dueDate"`
	TotalNet   float64   `json:"totalNet"`
	TotalGross float64   `json:"totalGross"`
	Currency   string    `gorm:"size:3;not null;default:'PLN'" json:"currency"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
