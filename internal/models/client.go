package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a counterparty owned by exactly one user.
// The NIP (tax identifier) is unique per owner, not globally: the service
// layer pre-checks it and the composite index backs the check under
// concurrent creates.
type Client struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID uint   `gorm:"not null;index;uniqueIndex:idx_clients_user_nip" json:"userId"`

	CompanyName string `gorm:"size:255;not null" json:"companyName"`
	NIP         string `gorm:"column:nip;size:10;not null;uniqueIndex:idx_clients_user_nip" json:"nip"`

	Email      string `gorm:"size:255" json:"email,omitempty"`
	Phone      string `gorm:"size:50" json:"phone,omitempty"`
	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	PostalCode string `gorm:"size:20" json:"postalCode,omitempty"`
	Country    string `gorm:"size:100" json:"country,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the UUID primary key.
func (c *Client) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// GetUserID reports the owning user for ownership checks.
func (c *Client) GetUserID() uint {
	return c.UserID
}
