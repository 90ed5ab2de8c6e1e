package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/query"
)

// PublicDashboardStats exposes the transparency metrics without
// authentication.
func (h *Handler) PublicDashboardStats(c *gin.Context) {
	stats, err := h.Queries.DashboardStats(query.Filter{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// PublicResolvedComplaints serves the redacted feed of resolved complaints,
// optionally narrowed to one SDG goal.
func (h *Handler) PublicResolvedComplaints(c *gin.Context) {
	feed, err := h.Queries.Public(query.Filter{
		Status:  models.StatusResolved,
		SDGGoal: c.Query("sdgGoal"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"complaints": feed.Complaints,
		"count":      len(feed.Complaints),
		"points":     feed.Points,
		"region":     feed.Region,
	})
}

// PublicMapComplaints serves every geo-tagged complaint for the map view.
func (h *Handler) PublicMapComplaints(c *gin.Context) {
	feed, err := h.Queries.Public(query.Filter{SDGGoal: c.Query("sdgGoal")})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"complaints": feed.Complaints,
		"count":      len(feed.Complaints),
		"points":     feed.Points,
		"region":     feed.Region,
	})
}

// PublicSDGAnalytics serves the per-goal impact summary.
func (h *Handler) PublicSDGAnalytics(c *gin.Context) {
	impact, err := h.Queries.SDGImpact()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sdgImpact": impact})
}

// Health is the public liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "CitizenLoop Public API is running"})
}
