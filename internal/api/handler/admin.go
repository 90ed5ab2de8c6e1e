package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Santosh-Singh382/citizenloop/internal/query"
)

// ListComplaints is the unscoped admin listing with optional
// status/category/SDG filters (conjunctive).
func (h *Handler) ListComplaints(c *gin.Context) {
	filter, err := query.ParseFilter(c.Query("status"), c.Query("category"), c.Query("sdgGoal"))
	if err != nil {
		respondError(c, err)
		return
	}

	complaints, err := h.Queries.Complaints(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "complaints": complaints, "count": len(complaints)})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateComplaintStatus applies an admin status transition.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	updated, err := h.Complaints.Transition(c.Param("complaintId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated", "complaint": updated})
}

// AdminDashboardStats serves the aggregate summary, optionally filtered.
func (h *Handler) AdminDashboardStats(c *gin.Context) {
	filter, err := query.ParseFilter(c.Query("status"), c.Query("category"), c.Query("sdgGoal"))
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.Queries.DashboardStats(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// ListUsers returns every registered account.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Storage.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users, "count": len(users)})
}

// GetUser returns a single account by numeric id.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid user id"})
		return
	}

	user, err := h.Storage.GetUserByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
