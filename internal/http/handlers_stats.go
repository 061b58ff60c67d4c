package http

import (
	"net/http"

	applog "expenses/internal/log"
)

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := s.stats.Statistics(ctx)
	if err != nil {
		applog.LogError(ctx, "Failed to compute statistics", err, applog.ComponentStats, applog.OpRead)
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}

	writeJSON(w, http.StatusOK, NewStatisticsResponse(stats))
}
