package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Santosh-Singh382/citizenloop/internal/complaint"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/query"
	"github.com/Santosh-Singh382/citizenloop/internal/storage"
)

// Handler wires the complaint engine and the query facade to the HTTP routes.
type Handler struct {
	Storage    storage.Storage
	Complaints *complaint.Service
	Queries    *query.Service
	JWTSecret  []byte
}

func NewHandler(s storage.Storage, jwtSecret []byte) *Handler {
	return &Handler{
		Storage:    s,
		Complaints: complaint.NewService(s),
		Queries:    query.NewService(s),
		JWTSecret:  jwtSecret,
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses. Errors are
// surfaced at the operation boundary, never swallowed.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrUnknownCategory),
		errors.Is(err, models.ErrInvalidStatus):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}
