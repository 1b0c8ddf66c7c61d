package services

import (
	"github.com/mstolarz/fakturo/internal/models"
	"gorm.io/gorm"
)

// Recorder appends human-readable audit entries for a user.
type Recorder interface {
	Record(userID uint, message string) error
}

// HistoryService persists and lists audit history entries.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record appends one entry to the user's history.
func (s *HistoryService) Record(userID uint, message string) error {
	entry := models.HistoryEntry{UserID: userID, Message: message}
	return s.db.Create(&entry).Error
}

// List returns the user's history, newest first.
func (s *HistoryService) List(userID uint) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := s.db.Where("user_id = ?", userID).Order("id desc").Find(&entries).Error
	return entries, err
}
