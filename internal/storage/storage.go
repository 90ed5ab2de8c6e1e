package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Santosh-Singh382/citizenloop/internal/config"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/sdg"
)

// Storage is the contract the complaint engine requires from a backing store.
// Listings return records in insertion order and an empty result is never an
// error. UpdateComplaint applies its mutation atomically per record: no reader
// observes a partially-written complaint and concurrent updates to the same
// record never interleave at field granularity.
type Storage interface {
	CreateComplaint(complaint *models.Complaint) error
	GetComplaint(id uint) (*models.Complaint, error)
	GetComplaintByCode(complaintID string) (*models.Complaint, error)
	ListComplaints() ([]models.Complaint, error)
	ListComplaintsByUser(userID uint) ([]models.Complaint, error)
	ListComplaintsByStatus(status models.Status) ([]models.Complaint, error)
	ListComplaintsByCategory(category models.Category) ([]models.Complaint, error)
	ListComplaintsByCategoryAndStatus(category models.Category, status models.Status) ([]models.Complaint, error)
	UpdateComplaint(complaintID string, mutate func(*models.Complaint) error) (*models.Complaint, error)

	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)

	ReserveSubmissionSlot(userID uint) (bool, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// prepareNewComplaint rejects malformed submissions and derives the SDG goal
// from the category, exactly once, before anything is persisted. Text length
// limits are the submission path's concern and are not re-checked here.
func prepareNewComplaint(complaint *models.Complaint) error {
	if complaint.Title == "" {
		return models.NewValidationError("title", "must not be empty")
	}
	if complaint.Description == "" {
		return models.NewValidationError("description", "must not be empty")
	}
	if (complaint.Latitude == nil) != (complaint.Longitude == nil) {
		return models.NewValidationError("location", "latitude and longitude must be provided together")
	}

	goal, err := sdg.Resolve(complaint.Category)
	if err != nil {
		return err
	}
	complaint.SDGGoal = goal
	complaint.Status = models.StatusPending
	complaint.ResolvedAt = nil
	return nil
}

// CreateComplaint зберігає нову скаргу в PostgreSQL.
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if err := prepareNewComplaint(complaint); err != nil {
		return err
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint for user %d: %v", complaint.UserID, err)
		return errors.Wrap(err, "create complaint")
	}
	return nil
}

// GetComplaint повертає скаргу за внутрішнім ID.
func (s *Service) GetComplaint(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get complaint")
	}
	return &complaint, nil
}

// GetComplaintByCode повертає скаргу за публічним кодом (ComplaintID).
func (s *Service) GetComplaintByCode(complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Where("complaint_id = ?", complaintID).First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get complaint by code")
	}
	return &complaint, nil
}

func (s *Service) ListComplaints() ([]models.Complaint, error) {
	return s.listComplaints(s.DB)
}

func (s *Service) ListComplaintsByUser(userID uint) ([]models.Complaint, error) {
	return s.listComplaints(s.DB.Where("user_id = ?", userID))
}

func (s *Service) ListComplaintsByStatus(status models.Status) ([]models.Complaint, error) {
	return s.listComplaints(s.DB.Where("status = ?", status))
}

func (s *Service) ListComplaintsByCategory(category models.Category) ([]models.Complaint, error) {
	return s.listComplaints(s.DB.Where("category = ?", category))
}

func (s *Service) ListComplaintsByCategoryAndStatus(category models.Category, status models.Status) ([]models.Complaint, error) {
	return s.listComplaints(s.DB.Where("category = ? AND status = ?", category, status))
}

// listComplaints виконує запит, сортуючи за порядком створення записів.
func (s *Service) listComplaints(tx *gorm.DB) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := tx.Order("id asc").Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, errors.Wrap(err, "list complaints")
	}
	return complaints, nil
}

// UpdateComplaint loads the record under a row lock, applies the mutation and
// persists the result in one transaction. The row lock keeps the granularity
// per record: updates to different complaints never block each other.
func (s *Service) UpdateComplaint(complaintID string, mutate func(*models.Complaint) error) (*models.Complaint, error) {
	var updated models.Complaint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var complaint models.Complaint
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("complaint_id = ?", complaintID).
			First(&complaint).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "lock complaint for update")
		}

		if err := mutate(&complaint); err != nil {
			return err
		}

		if err := tx.Save(&complaint).Error; err != nil {
			return errors.Wrap(err, "save complaint")
		}
		updated = complaint
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CreateUser зберігає користувача в PostgreSQL.
func (s *Service) CreateUser(user *models.User) error {
	if err := s.DB.Create(user).Error; err != nil {
		return errors.Wrap(err, "create user")
	}
	return nil
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user by email")
	}
	return &user, nil
}

func (s *Service) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

// ReserveSubmissionSlot перевіряє ліміт подань у Redis (швидка перевірка).
// It counts submissions per user inside a rolling window; the first increment
// arms the window TTL. A false result means the user is over the limit.
func (s *Service) ReserveSubmissionSlot(userID uint) (bool, error) {
	key := fmt.Sprintf("submit:%d", userID)

	count, err := s.Redis.Incr(s.Ctx, key).Result()
	if err != nil {
		return false, errors.Wrap(err, "reserve submission slot")
	}
	if count == 1 {
		if err := s.Redis.Expire(s.Ctx, key, config.SubmissionRateWindow).Err(); err != nil {
			return false, errors.Wrap(err, "arm submission window")
		}
	}
	return count <= config.SubmissionRateLimit, nil
}
