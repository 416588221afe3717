// README: Trip handler (free text in, assembled TripPlan out).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/service"
)

// TripGenerator is what the handler needs from the planner.
type TripGenerator interface {
	GenerateTrip(ctx context.Context, userText string) (*service.TripPlan, error)
}

type TripHandler struct {
	planner TripGenerator
}

func NewTripHandler(planner TripGenerator) *TripHandler {
	return &TripHandler{planner: planner}
}

type tripReq struct {
	Text string `json:"text"`
}

// Create handles POST /api/trips.
func (h *TripHandler) Create(c *gin.Context) {
	var req tripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(c, http.StatusBadRequest, "missing text")
		return
	}

	// One model call plus a search per category; 60s covers the slowest path.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	plan, err := h.planner.GenerateTrip(ctx, req.Text)
	if err != nil {
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, plan)
}
