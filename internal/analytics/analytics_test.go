package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Santosh-Singh382/citizenloop/internal/analytics"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
)

func resolved(at time.Time) *time.Time {
	return &at
}

// TestDashboardStats_MixedSet checks the counts, rate and category
// distribution over a small mixed snapshot: two pending and one resolved WASTE
// complaint, one in-progress and one resolved ROAD complaint.
func TestDashboardStats_MixedSet(t *testing.T) {
	// Arrange
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	complaints := []models.Complaint{
		{Category: models.CategoryWaste, Status: models.StatusPending, CreatedAt: created},
		{Category: models.CategoryWaste, Status: models.StatusPending, CreatedAt: created},
		{Category: models.CategoryWaste, Status: models.StatusResolved, CreatedAt: created, ResolvedAt: resolved(created.Add(48 * time.Hour))},
		{Category: models.CategoryRoad, Status: models.StatusInProgress, CreatedAt: created},
		{Category: models.CategoryRoad, Status: models.StatusResolved, CreatedAt: created, ResolvedAt: resolved(created.Add(24 * time.Hour))},
	}

	// Act
	stats := analytics.ComputeDashboardStats(complaints)

	// Assert
	assert.Equal(t, int64(5), stats.TotalComplaints)
	assert.Equal(t, int64(2), stats.PendingComplaints)
	assert.Equal(t, int64(1), stats.InProgressComplaints)
	assert.Equal(t, int64(2), stats.ResolvedComplaints)
	assert.Equal(t, float64(40), stats.ResolutionRate)
	assert.Equal(t, map[models.Category]int64{
		models.CategoryWaste: 3,
		models.CategoryRoad:  2,
	}, stats.CategoryCount)
}

// TestDashboardStats_EmptySet verifies the empty snapshot yields zeros, not a
// division-by-zero.
func TestDashboardStats_EmptySet(t *testing.T) {
	stats := analytics.ComputeDashboardStats(nil)

	assert.Equal(t, int64(0), stats.TotalComplaints)
	assert.Equal(t, float64(0), stats.ResolutionRate)
	assert.Equal(t, float64(0), stats.AverageResolutionTime)
	assert.Empty(t, stats.CategoryCount)
}

// TestDashboardStats_AverageResolutionTime verifies a complaint created at day
// zero and resolved at day four is reported as exactly 4 days.
func TestDashboardStats_AverageResolutionTime(t *testing.T) {
	// Arrange
	created := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	complaints := []models.Complaint{
		{Category: models.CategoryWater, Status: models.StatusResolved, CreatedAt: created, ResolvedAt: resolved(created.AddDate(0, 0, 4))},
		{Category: models.CategoryWater, Status: models.StatusPending, CreatedAt: created},
	}

	// Act
	stats := analytics.ComputeDashboardStats(complaints)

	// Assert
	assert.Equal(t, float64(4), stats.AverageResolutionTime)
}

// TestDashboardStats_SkipsMalformedTimestamps verifies a historical record
// without a creation timestamp is excluded from the average but still counted.
func TestDashboardStats_SkipsMalformedTimestamps(t *testing.T) {
	// Arrange
	created := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	complaints := []models.Complaint{
		{Category: models.CategoryRoad, Status: models.StatusResolved, CreatedAt: created, ResolvedAt: resolved(created.AddDate(0, 0, 2))},
		// Broken import: resolved but createdAt missing.
		{Category: models.CategoryRoad, Status: models.StatusResolved, ResolvedAt: resolved(created)},
	}

	// Act
	stats := analytics.ComputeDashboardStats(complaints)

	// Assert
	assert.Equal(t, int64(2), stats.ResolvedComplaints, "Counts still include the malformed record")
	assert.Equal(t, float64(2), stats.AverageResolutionTime, "Average only covers records with both timestamps")
}

// TestDashboardStats_Idempotent verifies the aggregator is pure: the same
// snapshot yields identical output across repeated calls.
func TestDashboardStats_Idempotent(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	complaints := []models.Complaint{
		{Category: models.CategoryHazard, Status: models.StatusResolved, CreatedAt: created, ResolvedAt: resolved(created.Add(30 * time.Hour))},
		{Category: models.CategoryWaste, Status: models.StatusPending, CreatedAt: created},
	}

	first := analytics.ComputeDashboardStats(complaints)
	second := analytics.ComputeDashboardStats(complaints)

	assert.Equal(t, first, second)
}

// TestSDGImpact_GroupsByGoal verifies grouping and that IN_PROGRESS complaints
// count towards the group total but towards neither resolved nor pending.
func TestSDGImpact_GroupsByGoal(t *testing.T) {
	// Arrange
	complaints := []models.Complaint{
		{SDGGoal: "SDG 11: Sustainable Cities", Status: models.StatusPending},
		{SDGGoal: "SDG 11: Sustainable Cities", Status: models.StatusInProgress},
		{SDGGoal: "SDG 11: Sustainable Cities", Status: models.StatusResolved},
		{SDGGoal: "SDG 6: Clean Water & Sanitation", Status: models.StatusResolved},
	}

	// Act
	impact := analytics.ComputeSDGImpact(complaints)

	// Assert
	assert.Len(t, impact, 2)

	cities := impact["SDG 11: Sustainable Cities"]
	assert.Equal(t, int64(3), cities.TotalComplaints)
	assert.Equal(t, int64(1), cities.Resolved)
	assert.Equal(t, int64(1), cities.Pending)
	assert.Less(t, cities.Resolved+cities.Pending, cities.TotalComplaints,
		"The in-progress complaint is counted in neither bucket")

	water := impact["SDG 6: Clean Water & Sanitation"]
	assert.Equal(t, int64(1), water.TotalComplaints)
	assert.Equal(t, water.TotalComplaints, water.Resolved+water.Pending,
		"Equality holds when no complaint in the group is in progress")
}

// TestSDGImpact_EmptySet verifies zero complaints yield an empty mapping, not
// an error.
func TestSDGImpact_EmptySet(t *testing.T) {
	impact := analytics.ComputeSDGImpact(nil)

	assert.NotNil(t, impact)
	assert.Empty(t, impact)
}

// TestSDGImpact_SkipsUnlabeledRecords verifies records without an SDG goal are
// excluded instead of forming a phantom group.
func TestSDGImpact_SkipsUnlabeledRecords(t *testing.T) {
	complaints := []models.Complaint{
		{SDGGoal: "", Status: models.StatusPending},
		{SDGGoal: "SDG 7: Affordable & Clean Energy", Status: models.StatusPending},
	}

	impact := analytics.ComputeSDGImpact(complaints)

	assert.Len(t, impact, 1)
	assert.NotContains(t, impact, "")
}

func TestResolutionTime(t *testing.T) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, ok := analytics.ResolutionTime(models.Complaint{CreatedAt: created})
	assert.False(t, ok, "Unresolved complaints have no resolution time")

	d, ok := analytics.ResolutionTime(models.Complaint{CreatedAt: created, ResolvedAt: resolved(created.Add(36 * time.Hour))})
	assert.True(t, ok)
	assert.Equal(t, 36*time.Hour, d)
}
