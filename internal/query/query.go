// Package query composes store retrieval with optional status, category and
// SDG predicates. The citizen, admin and public views all read through this
// facade so they observe identical filtering and arithmetic.
package query

import (
	"strings"
	"time"

	"github.com/Santosh-Singh382/citizenloop/internal/analytics"
	"github.com/Santosh-Singh382/citizenloop/internal/geo"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/storage"
)

// Filter holds optional predicates. Zero-valued fields match everything;
// combination semantics are conjunctive.
type Filter struct {
	Status   models.Status
	Category models.Category
	SDGGoal  string
}

// ParseFilter builds a Filter from raw query values. Empty strings and "ALL"
// leave the predicate unset; unrecognized values are rejected.
func ParseFilter(status, category, sdgGoal string) (Filter, error) {
	var f Filter
	if s := strings.TrimSpace(status); s != "" && !strings.EqualFold(s, "ALL") {
		parsed, err := models.ParseStatus(s)
		if err != nil {
			return Filter{}, err
		}
		f.Status = parsed
	}
	if c := strings.TrimSpace(category); c != "" && !strings.EqualFold(c, "ALL") {
		parsed, err := models.ParseCategory(c)
		if err != nil {
			return Filter{}, err
		}
		f.Category = parsed
	}
	f.SDGGoal = strings.TrimSpace(sdgGoal)
	return f, nil
}

// Matches reports whether a record passes every supplied predicate.
func (f Filter) Matches(c models.Complaint) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.SDGGoal != "" && !strings.EqualFold(c.SDGGoal, f.SDGGoal) {
		return false
	}
	return true
}

// Service is the query facade over a complaint store.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Complaints returns the unscoped (admin) view of all records passing the
// filter, in insertion order.
func (s *Service) Complaints(f Filter) ([]models.Complaint, error) {
	complaints, err := s.fetch(f)
	if err != nil {
		return nil, err
	}
	return filtered(complaints, f), nil
}

// ComplaintsForUser returns the citizen view: the same filtering, scoped to
// one submitter.
func (s *Service) ComplaintsForUser(userID uint, f Filter) ([]models.Complaint, error) {
	complaints, err := s.Storage.ListComplaintsByUser(userID)
	if err != nil {
		return nil, err
	}
	return filtered(complaints, f), nil
}

// DashboardStats computes the aggregate summary over the filtered snapshot.
func (s *Service) DashboardStats(f Filter) (analytics.DashboardStats, error) {
	complaints, err := s.Complaints(f)
	if err != nil {
		return analytics.DashboardStats{}, err
	}
	return analytics.ComputeDashboardStats(complaints), nil
}

// SDGImpact computes the per-goal impact summary over all records.
func (s *Service) SDGImpact() (map[string]analytics.SDGGroup, error) {
	complaints, err := s.Storage.ListComplaints()
	if err != nil {
		return nil, err
	}
	return analytics.ComputeSDGImpact(complaints), nil
}

// fetch pushes the status/category predicates into the store's indexed
// listings; the SDG predicate is applied in memory.
func (s *Service) fetch(f Filter) ([]models.Complaint, error) {
	switch {
	case f.Category != "" && f.Status != "":
		return s.Storage.ListComplaintsByCategoryAndStatus(f.Category, f.Status)
	case f.Category != "":
		return s.Storage.ListComplaintsByCategory(f.Category)
	case f.Status != "":
		return s.Storage.ListComplaintsByStatus(f.Status)
	default:
		return s.Storage.ListComplaints()
	}
}

func filtered(complaints []models.Complaint, f Filter) []models.Complaint {
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// PublicComplaint is the field-redacted projection served to unauthenticated
// callers. It omits the submitter reference and the uploaded image.
type PublicComplaint struct {
	ComplaintID string          `json:"complaintId"`
	Title       string          `json:"title"`
	Category    models.Category `json:"category"`
	Status      models.Status   `json:"status"`
	SDGGoal     string          `json:"sdgGoal"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	ResolvedAt  string          `json:"resolvedAt,omitempty"`
}

// Redact strips a complaint down to the fields safe for public disclosure.
func Redact(c models.Complaint) PublicComplaint {
	p := PublicComplaint{
		ComplaintID: c.ComplaintID,
		Title:       c.Title,
		Category:    c.Category,
		Status:      c.Status,
		SDGGoal:     c.SDGGoal,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
	}
	if !c.CreatedAt.IsZero() {
		p.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	if c.ResolvedAt != nil {
		p.ResolvedAt = c.ResolvedAt.UTC().Format(time.RFC3339)
	}
	return p
}

// PublicFeed bundles the redacted records with their map points and the padded
// region framing them. Region is nil when no record carries coordinates.
type PublicFeed struct {
	Complaints []PublicComplaint `json:"complaints"`
	Points     []geo.Point       `json:"points"`
	Region     *geo.Region       `json:"region,omitempty"`
}

// Public returns the redacted feed for all records passing the filter.
func (s *Service) Public(f Filter) (PublicFeed, error) {
	complaints, err := s.Complaints(f)
	if err != nil {
		return PublicFeed{}, err
	}

	feed := PublicFeed{
		Complaints: make([]PublicComplaint, 0, len(complaints)),
		Points:     geo.ExtractPoints(complaints),
	}
	for _, c := range complaints {
		feed.Complaints = append(feed.Complaints, Redact(c))
	}
	if region, ok := geo.BoundingRegion(feed.Points); ok {
		feed.Region = &region
	}
	return feed, nil
}
