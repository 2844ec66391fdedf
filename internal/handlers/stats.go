package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/logger"
	"github.com/sbilibin2017/todo-tracker/internal/middlewares"
	"github.com/sbilibin2017/todo-tracker/internal/models"
	"github.com/sbilibin2017/todo-tracker/internal/services"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=handlers

type StatsComputer interface {
	Compute(ctx context.Context, userID uuid.UUID, r models.StatsRange) (*models.Stats, error)
}

// StatsResponse is the completion series for the requested range plus totals
// for every fixed range.
// swagger:model StatsResponse
type StatsResponse struct {
	// Bucket labels, ascending
	Labels []string `json:"labels"`
	// Completed todos per bucket
	Data []int64 `json:"data"`
	// default: today
	Range          string                `json:"range"`
	CompletedTasks models.CompletedTasks `json:"completedTasks"`
}

func newStatsResponse(s *models.Stats) StatsResponse {
	resp := StatsResponse{
		Labels:         make([]string, 0, len(s.Series)),
		Data:           make([]int64, 0, len(s.Series)),
		Range:          string(s.Range),
		CompletedTasks: s.CompletedTasks,
	}
	for _, b := range s.Series {
		resp.Labels = append(resp.Labels, b.Label)
		resp.Data = append(resp.Data, b.Count)
	}
	return resp
}

// NewStatsHandler returns an HTTP handler with completion statistics.
// @Summary Completion statistics
// @Description Completed todos of the caller grouped by hour (today) or day, plus totals for today, this week, this month, this year and all time.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param range query string false "today, this_week, this_month, this_year or all_time" default(today)
// @Success 200 {object} handlers.StatsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid range parameter"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /stats [get]
func NewStatsHandler(svc StatsComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "User ID not found in token"})
			return
		}

		stats, err := svc.Compute(r.Context(), userID, models.StatsRange(r.URL.Query().Get("range")))
		switch {
		case errors.Is(err, services.ErrInvalidRange):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid range parameter"})
		case err != nil:
			logger.Log.Errorw("stats failed", "user_id", userID, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		default:
			writeJSON(w, http.StatusOK, newStatsResponse(stats))
		}
	}
}
