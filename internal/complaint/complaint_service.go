// Package complaint provides the core logic for handling civic complaints:
// submission validation and the status transition engine.
package complaint

import (
	"fmt"
	"time"

	"github.com/Santosh-Singh382/citizenloop/internal/config"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/storage"
)

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Submission is the citizen-facing input for a new complaint.
type Submission struct {
	UserID      uint
	Title       string
	Description string
	Category    string
	Latitude    *float64
	Longitude   *float64
	ImageURL    string
}

// Submit validates a submission and persists it as a new PENDING complaint.
// The store assigns the public complaint code and the SDG goal.
func (s *Service) Submit(sub Submission) (*models.Complaint, error) {
	if len(sub.Title) > config.TitleMaxLen {
		return nil, models.NewValidationError("title",
			fmt.Sprintf("must be at most %d characters", config.TitleMaxLen))
	}
	if len(sub.Description) > config.DescriptionMaxLen {
		return nil, models.NewValidationError("description",
			fmt.Sprintf("must be at most %d characters", config.DescriptionMaxLen))
	}

	category, err := models.ParseCategory(sub.Category)
	if err != nil {
		return nil, err
	}

	// The submission must reference an existing citizen.
	if _, err := s.Storage.GetUserByID(sub.UserID); err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		UserID:      sub.UserID,
		Title:       sub.Title,
		Description: sub.Description,
		Category:    category,
		Latitude:    sub.Latitude,
		Longitude:   sub.Longitude,
		ImageURL:    sub.ImageURL,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Transition applies a status change to the complaint identified by its public
// code. Any recognized target is accepted from any state. ResolvedAt is set
// the first time the complaint reaches RESOLVED and never touched again;
// moving away from RESOLVED does not clear it. The store applies the update
// atomically per record.
func (s *Service) Transition(complaintID string, target string) (*models.Complaint, error) {
	status, err := models.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	return s.Storage.UpdateComplaint(complaintID, func(c *models.Complaint) error {
		c.Status = status
		if status == models.StatusResolved && c.ResolvedAt == nil {
			now := time.Now()
			c.ResolvedAt = &now
		}
		return nil
	})
}

// GetByCode returns the complaint with the given public code.
func (s *Service) GetByCode(complaintID string) (*models.Complaint, error) {
	return s.Storage.GetComplaintByCode(complaintID)
}

// ListForUser returns all complaints submitted by one citizen, in submission
// order.
func (s *Service) ListForUser(userID uint) ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByUser(userID)
}
