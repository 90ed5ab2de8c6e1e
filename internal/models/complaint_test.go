package models_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Santosh-Singh382/citizenloop/internal/models"
)

// TestComplaintBeforeCreate_AssignsCode verifies that the hook generates a
// public complaint code and the initial PENDING status.
func TestComplaintBeforeCreate_AssignsCode(t *testing.T) {
	// Arrange
	complaint := &models.Complaint{
		UserID:      1,
		Title:       "Overflowing bin",
		Description: "Bin at the corner has not been emptied in a week",
		Category:    models.CategoryWaste,
	}

	// Act - Call the hook directly (GORM would call this automatically)
	err := complaint.BeforeCreate(nil)

	// Assert
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(complaint.ComplaintID, "CL-"), "Complaint code must carry the CL- prefix")
	assert.Equal(t, models.StatusPending, complaint.Status, "New complaints always start PENDING")
}

// TestComplaintBeforeCreate_PreservesExistingCode verifies that the hook does
// not overwrite a code assigned earlier.
func TestComplaintBeforeCreate_PreservesExistingCode(t *testing.T) {
	// Arrange
	existing := models.NewComplaintCode()
	complaint := &models.Complaint{ComplaintID: existing, Status: models.StatusInProgress}

	// Act
	err := complaint.BeforeCreate(nil)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, existing, complaint.ComplaintID)
	assert.Equal(t, models.StatusInProgress, complaint.Status)
}

// TestNewComplaintCode_Unique verifies codes do not collide across a burst of
// submissions.
func TestNewComplaintCode_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := models.NewComplaintCode()
		assert.NotContains(t, seen, code, "Each complaint code should be unique")
		seen[code] = true
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Category
		wantErr bool
	}{
		{name: "Exact", input: "WASTE", want: models.CategoryWaste},
		{name: "Lowercase", input: "road", want: models.CategoryRoad},
		{name: "Whitespace", input: "  HAZARD ", want: models.CategoryHazard},
		{name: "Unknown", input: "GRAFFITI", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrUnknownCategory)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Status
		wantErr bool
	}{
		{name: "Pending", input: "PENDING", want: models.StatusPending},
		{name: "Lowercase", input: "resolved", want: models.StatusResolved},
		{name: "InProgress", input: "IN_PROGRESS", want: models.StatusInProgress},
		{name: "Unknown", input: "CLOSED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestValidationError_MatchesSentinel verifies field-level failures match the
// ErrValidation sentinel through errors.Is and keep the field detail.
func TestValidationError_MatchesSentinel(t *testing.T) {
	err := models.NewValidationError("title", "must not be empty")

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "title")

	var ve *models.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)
}

func TestHasLocation(t *testing.T) {
	lat, lng := 48.45, 35.05

	assert.False(t, (&models.Complaint{}).HasLocation())
	assert.False(t, (&models.Complaint{Latitude: &lat}).HasLocation())
	assert.False(t, (&models.Complaint{Longitude: &lng}).HasLocation())
	assert.True(t, (&models.Complaint{Latitude: &lat, Longitude: &lng}).HasLocation())
}
