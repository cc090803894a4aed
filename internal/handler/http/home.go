package http

import (
	"net/http"
	"time"

	"github.com/gserrano-dev/portfolio-api/internal/utils"
	"github.com/gserrano-dev/portfolio-api/models"
)

// endpointDirectory is the machine-readable route listing served by the
// root endpoint and echoed (abridged) by the not-found handler.
func endpointDirectory() map[string]any {
	return map[string]any{
		"referencias": map[string]string{
			"getAll":  "GET /api/referencias",
			"getById": "GET /api/referencias/{id}",
			"create":  "POST /api/referencias",
		},
		"comments": map[string]string{
			"getAll":  "GET /api/comments?page=1&limit=6",
			"getById": "GET /api/comments/{id}",
			"create":  "POST /api/comments",
			"delete":  "DELETE /api/comments/{id} (admin)",
			"stats":   "GET /api/comments/stats",
		},
		"health": "GET /api/health",
	}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HomeResponse{
		Status:        "success",
		Message:       "API del Portafolio funcionando correctamente",
		Version:       h.version,
		Documentation: "Consulta los endpoints disponibles",
		Environment:   h.environment,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Endpoints:     endpointDirectory(),
	}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NotFoundResponse{
		Success:    false,
		Error:      "Ruta no encontrada: " + r.URL.Path,
		Suggestion: "Visita la ruta raíz (/) para ver los endpoints disponibles",
		AvailableEndpoints: map[string]any{
			"home":       "GET /",
			"health":     "GET /api/health",
			"references": []string{"GET /api/referencias", "POST /api/referencias"},
			"comments":   []string{"GET /api/comments", "POST /api/comments"},
		},
	}, http.StatusNotFound)
}
