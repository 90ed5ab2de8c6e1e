package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santosh-Singh382/citizenloop/internal/complaint"
	"github.com/Santosh-Singh382/citizenloop/internal/query"
)

type submitRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ImageURL    string   `json:"imageUrl"`
}

// SubmitComplaint accepts a new citizen complaint. Submissions are
// rate-limited per user before any validation work happens.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	userID := callerID(c)

	allowed, err := h.Storage.ReserveSubmissionSlot(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "submission limit reached, try again later"})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	created, err := h.Complaints.Submit(complaint.Submission{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Complaint submitted successfully",
		"complaintId": created.ComplaintID,
		"complaint":   created,
	})
}

// ListMyComplaints returns the caller's complaints, optionally filtered by
// status/category/SDG query parameters.
func (h *Handler) ListMyComplaints(c *gin.Context) {
	filter, err := query.ParseFilter(c.Query("status"), c.Query("category"), c.Query("sdgGoal"))
	if err != nil {
		respondError(c, err)
		return
	}

	complaints, err := h.Queries.ComplaintsForUser(callerID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "complaints": complaints, "count": len(complaints)})
}

// GetMyComplaint returns one of the caller's complaints by its public code.
func (h *Handler) GetMyComplaint(c *gin.Context) {
	found, err := h.Complaints.GetByCode(c.Param("complaintId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if found.UserID != callerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "unauthorized access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "complaint": found})
}

// TrackComplaintStatus is the lightweight status view citizens poll while a
// complaint moves through its lifecycle.
func (h *Handler) TrackComplaintStatus(c *gin.Context) {
	found, err := h.Complaints.GetByCode(c.Param("complaintId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if found.UserID != callerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "unauthorized access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"complaintId": found.ComplaintID,
		"status":      found.Status,
		"title":       found.Title,
		"category":    found.Category,
		"createdAt":   found.CreatedAt,
		"updatedAt":   found.UpdatedAt,
		"resolvedAt":  found.ResolvedAt,
	})
}
