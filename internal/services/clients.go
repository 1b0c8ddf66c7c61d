package services

import (
	"errors"
	"fmt"

	"github.com/mstolarz/fakturo/internal/models"
	"github.com/mstolarz/fakturo/validation"
	"gorm.io/gorm"
)

// ClientResult is the outcome envelope returned by mutating client operations.
type ClientResult struct {
	IsSuccess   bool   `json:"isSuccess"`
	ID          string `json:"id,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// ClientInput carries the fields accepted when creating a client.
// The owner is taken from the authenticated user, never from the payload.
type ClientInput struct {
	CompanyName string `json:"companyName"`
	NIP         string `json:"nip"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

// ClientPatch carries a partial update. Nil fields are absent and leave the
// stored value untouched. The id and owner are never patchable.
type ClientPatch struct {
	ID          string  `json:"id"`
	CompanyName *string `json:"companyName"`
	NIP         *string `json:"nip"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postalCode"`
	Country     *string `json:"country"`
}

// Apply overwrites the target's fields with the patch's present values.
func (p ClientPatch) Apply(c *models.Client) {
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.NIP != nil {
		c.NIP = *p.NIP
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.PostalCode != nil {
		c.PostalCode = *p.PostalCode
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
}

// ClientService manages the tenant-scoped client directory. Every query is
// filtered by the owning user's id; no operation crosses tenants.
type ClientService struct {
	db      *gorm.DB
	history Recorder
}

func NewClientService(db *gorm.DB, history Recorder) *ClientService {
	return &ClientService{db: db, history: history}
}

// List returns all clients owned by the user.
func (s *ClientService) List(userID uint) ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Where("user_id = ?", userID).Find(&clients).Error
	return clients, err
}

// Get returns the user's client with the given id, or ErrClientNotFound.
// An id owned by a different user is indistinguishable from a missing one.
func (s *ClientService) Get(userID uint, clientID string) (*models.Client, error) {
	var client models.Client
	err := s.db.Where("user_id = ? AND id = ?", userID, clientID).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Create adds a new client for the user. The NIP must not already be in use
// by the same user (other users may hold the same NIP) and the data must pass
// validation. Nothing is persisted when either check fails.
func (s *ClientService) Create(userID uint, in ClientInput) (ClientResult, error) {
	var count int64
	err := s.db.Model(&models.Client{}).
		Where("user_id = ? AND nip = ?", userID, in.NIP).
		Count(&count).Error
	if err != nil {
		return ClientResult{}, err
	}
	if count > 0 {
		return ClientResult{}, &ForbiddenError{Message: MsgClientExists}
	}

	client := models.Client{
		UserID:      userID,
		CompanyName: in.CompanyName,
		NIP:         in.NIP,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		PostalCode:  in.PostalCode,
		Country:     in.Country,
	}
	if v := validateClient(&client); !v.Empty() {
		return ClientResult{}, &ForbiddenError{Message: MsgInvalidData}
	}

	if err := s.db.Create(&client).Error; err != nil {
		return ClientResult{}, err
	}
	if err := s.history.Record(userID, fmt.Sprintf("Added new client: %s.", client.CompanyName)); err != nil {
		return ClientResult{}, err
	}
	return ClientResult{IsSuccess: true, ID: client.ID, CompanyName: client.CompanyName}, nil
}

// Remove deletes the user's client. Removal is refused while any invoice
// still references the client. The history entry is written before the
// physical delete.
func (s *ClientService) Remove(userID uint, clientID string) (ClientResult, error) {
	client, err := s.Get(userID, clientID)
	if err != nil {
		return ClientResult{}, err
	}

	var invoices int64
	err = s.db.Model(&models.Invoice{}).
		Where("client_id = ?", client.ID).
		Count(&invoices).Error
	if err != nil {
		return ClientResult{}, err
	}
	if invoices != 0 {
		return ClientResult{}, &ForbiddenError{Message: MsgClientHasInvoices}
	}

	if err := s.history.Record(userID, fmt.Sprintf("Removed client: %s.", client.CompanyName)); err != nil {
		return ClientResult{}, err
	}
	if err := s.db.Delete(client).Error; err != nil {
		return ClientResult{}, err
	}
	return ClientResult{IsSuccess: true, ID: client.ID, CompanyName: client.CompanyName}, nil
}

// Patch merges a partial update into the user's client. The history entry
// records the company name as it was before the merge. A merged record that
// fails validation is discarded and reported as a non-success result rather
// than an error; the stored row is left untouched.
func (s *ClientService) Patch(userID uint, patch ClientPatch) (ClientResult, error) {
	client, err := s.Get(userID, patch.ID)
	if err != nil {
		return ClientResult{}, err
	}

	if err := s.history.Record(userID, fmt.Sprintf("Edited client data: %s.", client.CompanyName)); err != nil {
		return ClientResult{}, err
	}

	patch.Apply(client)
	if v := validateClient(client); !v.Empty() {
		return ClientResult{IsSuccess: false}, nil
	}

	if err := s.db.Save(client).Error; err != nil {
		return ClientResult{}, err
	}
	return ClientResult{IsSuccess: true, ID: client.ID, CompanyName: client.CompanyName}, nil
}

func validateClient(c *models.Client) validation.Violations {
	v := make(validation.Violations)
	validation.Required("companyName", c.CompanyName, v)
	validation.Required("nip", c.NIP, v)
	validation.NIP("nip", c.NIP, v)
	validation.Email("email", c.Email, v)
	return v
}
