// Package analytics computes dashboard statistics over complaint snapshots.
// Every function here is pure: it takes a point-in-time sequence, touches no
// shared state and yields identical output for identical input. Malformed
// historical records are excluded from the affected figure instead of failing
// the whole dashboard.
package analytics

import (
	"time"

	"github.com/Santosh-Singh382/citizenloop/internal/config"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
)

// DashboardStats is the aggregate summary every view (citizen, admin, public)
// observes. All arithmetic lives here so the views cannot disagree.
type DashboardStats struct {
	TotalComplaints      int64 `json:"totalComplaints"`
	PendingComplaints    int64 `json:"pendingComplaints"`
	InProgressComplaints int64 `json:"inProgressComplaints"`
	ResolvedComplaints   int64 `json:"resolvedComplaints"`
	// ResolutionRate is the RESOLVED share in percent; 0 for an empty set.
	ResolutionRate float64 `json:"resolutionRate"`
	// AverageResolutionTime is the mean time from creation to resolution in
	// fractional days, over resolved complaints only; 0 when none exist.
	AverageResolutionTime float64 `json:"averageResolutionTime"`
	// CategoryCount holds one entry per category actually present.
	CategoryCount map[models.Category]int64 `json:"categoryCount"`
}

// ComputeDashboardStats aggregates counts, resolution rate and average
// resolution time over a complaint snapshot.
func ComputeDashboardStats(complaints []models.Complaint) DashboardStats {
	stats := DashboardStats{
		TotalComplaints: int64(len(complaints)),
		CategoryCount:   make(map[models.Category]int64),
	}

	var resolvedDays float64
	var resolvedWithTimes int64
	for _, c := range complaints {
		switch c.Status {
		case models.StatusPending:
			stats.PendingComplaints++
		case models.StatusInProgress:
			stats.InProgressComplaints++
		case models.StatusResolved:
			stats.ResolvedComplaints++
		}
		if c.Category != "" {
			stats.CategoryCount[c.Category]++
		}

		// A record missing its creation timestamp is excluded from the
		// average, not from the counts.
		if c.ResolvedAt != nil && !c.CreatedAt.IsZero() {
			resolvedDays += c.ResolvedAt.Sub(c.CreatedAt).Hours() / config.HoursPerDay
			resolvedWithTimes++
		}
	}

	if stats.TotalComplaints > 0 {
		stats.ResolutionRate = float64(stats.ResolvedComplaints) / float64(stats.TotalComplaints) * 100
	}
	if resolvedWithTimes > 0 {
		stats.AverageResolutionTime = resolvedDays / float64(resolvedWithTimes)
	}
	return stats
}

// SDGGroup is the per-goal impact summary. IN_PROGRESS complaints count
// towards TotalComplaints but towards neither Resolved nor Pending.
type SDGGroup struct {
	SDG             string `json:"sdg"`
	TotalComplaints int64  `json:"totalComplaints"`
	Resolved        int64  `json:"resolved"`
	Pending         int64  `json:"pending"`
}

// ComputeSDGImpact groups a complaint snapshot by SDG goal. Records without a
// goal label are skipped. An empty snapshot yields an empty map.
func ComputeSDGImpact(complaints []models.Complaint) map[string]SDGGroup {
	impact := make(map[string]SDGGroup)
	for _, c := range complaints {
		if c.SDGGoal == "" {
			continue
		}
		group := impact[c.SDGGoal]
		group.SDG = c.SDGGoal
		group.TotalComplaints++
		switch c.Status {
		case models.StatusResolved:
			group.Resolved++
		case models.StatusPending:
			group.Pending++
		}
		impact[c.SDGGoal] = group
	}
	return impact
}

// ResolutionTime returns the creation-to-resolution duration for a single
// complaint, or false when it has not been resolved.
func ResolutionTime(c models.Complaint) (time.Duration, bool) {
	if c.ResolvedAt == nil || c.CreatedAt.IsZero() {
		return 0, false
	}
	return c.ResolvedAt.Sub(c.CreatedAt), true
}
