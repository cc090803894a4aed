package http

import (
	"net/http"
	"time"

	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/utils"
	"github.com/gserrano-dev/portfolio-api/models"
)

// health exercises the comment stats query as a store liveness probe. A
// store failure reports "unhealthy" with the underlying error text; the
// process itself never crashes over it.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := h.services.CommentService.Stats(ctx); err != nil {
		log.Err(err).Msg("health check: store probe failed")
		utils.WriteJSON(w, models.HealthResponse{
			Status:    "unhealthy",
			Error:     err.Error(),
			Timestamp: now,
			Database: &models.DatabaseHealth{
				Status: "disconnected",
				Type:   "PostgreSQL",
			},
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:    "healthy",
		Message:   "Servidor y base de datos funcionando correctamente",
		Timestamp: now,
		Uptime:    time.Since(h.started).Seconds(),
		Database: &models.DatabaseHealth{
			Status:      "connected",
			Type:        "PostgreSQL",
			Environment: h.environment,
		},
		Environment: h.environment,
		Version:     h.version,
	}, http.StatusOK)
}
