// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/places"
	"tripsmith/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeTripError maps planner failures onto HTTP statuses.
func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, places.ErrSearchFailed):
		writeError(c, http.StatusBadGateway, "venue search unavailable")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
