package storage

import (
	"sync"
	"time"

	"github.com/Santosh-Singh382/citizenloop/internal/config"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
)

// MemoryStore is an in-memory Storage implementation used by tests and the
// local development mode. Records are kept in insertion order and every
// mutation runs under the store lock, so readers always observe fully-written
// records and concurrent updates to one complaint never interleave.
type MemoryStore struct {
	mu sync.RWMutex

	complaints []models.Complaint
	byCode     map[string]int
	users      []models.User
	byEmail    map[string]int

	nextComplaintID uint
	nextUserID      uint

	submitCount  map[uint]int64
	submitWindow map[uint]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCode:       make(map[string]int),
		byEmail:      make(map[string]int),
		submitCount:  make(map[uint]int64),
		submitWindow: make(map[uint]time.Time),
	}
}

func (m *MemoryStore) CreateComplaint(complaint *models.Complaint) error {
	if err := prepareNewComplaint(complaint); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextComplaintID++
	complaint.ID = m.nextComplaintID
	if complaint.ComplaintID == "" {
		complaint.ComplaintID = models.NewComplaintCode()
	}
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now()
	}
	complaint.UpdatedAt = complaint.CreatedAt

	m.byCode[complaint.ComplaintID] = len(m.complaints)
	m.complaints = append(m.complaints, *complaint)
	return nil
}

func (m *MemoryStore) GetComplaint(id uint) (*models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.complaints {
		if m.complaints[i].ID == id {
			c := m.complaints[i]
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MemoryStore) GetComplaintByCode(complaintID string) (*models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byCode[complaintID]
	if !ok {
		return nil, models.ErrNotFound
	}
	c := m.complaints[i]
	return &c, nil
}

func (m *MemoryStore) ListComplaints() ([]models.Complaint, error) {
	return m.list(func(models.Complaint) bool { return true })
}

func (m *MemoryStore) ListComplaintsByUser(userID uint) ([]models.Complaint, error) {
	return m.list(func(c models.Complaint) bool { return c.UserID == userID })
}

func (m *MemoryStore) ListComplaintsByStatus(status models.Status) ([]models.Complaint, error) {
	return m.list(func(c models.Complaint) bool { return c.Status == status })
}

func (m *MemoryStore) ListComplaintsByCategory(category models.Category) ([]models.Complaint, error) {
	return m.list(func(c models.Complaint) bool { return c.Category == category })
}

func (m *MemoryStore) ListComplaintsByCategoryAndStatus(category models.Category, status models.Status) ([]models.Complaint, error) {
	return m.list(func(c models.Complaint) bool { return c.Category == category && c.Status == status })
}

func (m *MemoryStore) list(match func(models.Complaint) bool) ([]models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Complaint, 0, len(m.complaints))
	for _, c := range m.complaints {
		if match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateComplaint mutates a copy and commits it only when the mutation
// succeeds, so a rejected update leaves the record unchanged.
func (m *MemoryStore) UpdateComplaint(complaintID string, mutate func(*models.Complaint) error) (*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.byCode[complaintID]
	if !ok {
		return nil, models.ErrNotFound
	}

	complaint := m.complaints[i]
	if err := mutate(&complaint); err != nil {
		return nil, err
	}
	complaint.UpdatedAt = time.Now()
	m.complaints[i] = complaint

	c := complaint
	return &c, nil
}

func (m *MemoryStore) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextUserID++
	user.ID = m.nextUserID
	if user.Role == "" {
		user.Role = models.RoleCitizen
	}
	m.byEmail[user.Email] = len(m.users)
	m.users = append(m.users, *user)
	return nil
}

func (m *MemoryStore) GetUserByID(id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byEmail[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	u := m.users[i]
	return &u, nil
}

func (m *MemoryStore) ListUsers() ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MemoryStore) ReserveSubmissionSlot(userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if start, ok := m.submitWindow[userID]; !ok || now.Sub(start) > config.SubmissionRateWindow {
		m.submitWindow[userID] = now
		m.submitCount[userID] = 0
	}
	m.submitCount[userID]++
	return m.submitCount[userID] <= config.SubmissionRateLimit, nil
}
