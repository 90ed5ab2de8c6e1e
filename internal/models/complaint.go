package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the closed set of civic issue categories a complaint can carry.
type Category string

const (
	CategoryWaste       Category = "WASTE"
	CategoryWater       Category = "WATER"
	CategoryRoad        Category = "ROAD"
	CategoryStreetlight Category = "STREETLIGHT"
	CategoryHazard      Category = "HAZARD"
)

// Categories lists every recognized category, in declaration order.
func Categories() []Category {
	return []Category{CategoryWaste, CategoryWater, CategoryRoad, CategoryStreetlight, CategoryHazard}
}

// ParseCategory maps a raw string onto the closed category set.
// It returns ErrUnknownCategory for anything outside it.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryWaste, CategoryWater, CategoryRoad, CategoryStreetlight, CategoryHazard:
		return c, nil
	}
	return "", ErrUnknownCategory
}

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
)

// ParseStatus maps a raw string onto the recognized status set.
// It returns ErrInvalidStatus for anything outside it.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusInProgress, StatusResolved:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Complaint represents a citizen-submitted civic issue tracked through its
// resolution lifecycle.
type Complaint struct {
	// ID is the internal primary key, assigned by the store at creation.
	ID uint `gorm:"primaryKey" json:"id"`
	// ComplaintID is the human-facing public code (e.g. "CL-1700000000000-AB12CD34").
	// It is stable for the record's lifetime and distinct from ID.
	ComplaintID string `gorm:"uniqueIndex;not null" json:"complaintId"`
	// UserID references the submitting citizen.
	UserID uint `gorm:"not null;index" json:"userId"`

	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Category    Category `gorm:"type:text;not null" json:"category"`
	Status      Status   `gorm:"type:text;not null;index" json:"status"`

	// Latitude and Longitude are either both present or both absent.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// ImageURL is an opaque reference to an uploaded photo. The engine never
	// interprets it.
	ImageURL string `json:"imageUrl,omitempty"`

	// SDGGoal is derived from Category exactly once, at creation. Existing
	// records keep their original label even if the mapping table changes.
	SDGGoal string `gorm:"index" json:"sdgGoal"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// ResolvedAt is set the first time the complaint reaches RESOLVED and is
	// never cleared or updated afterwards.
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// BeforeCreate is a GORM hook assigning the public complaint code and the
// initial PENDING status when they are not set yet.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ComplaintID == "" {
		c.ComplaintID = NewComplaintCode()
	}
	if c.Status == "" {
		c.Status = StatusPending
	}
	return
}

// HasLocation reports whether both coordinates are present.
func (c *Complaint) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// NewComplaintCode generates a unique public complaint code in the
// "CL-<unix millis>-<8 uuid chars>" format citizens use to track a complaint.
func NewComplaintCode() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("CL-%d-%s", time.Now().UnixMilli(), suffix)
}
