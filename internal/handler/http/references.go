package http

import (
	"encoding/json"
	"net/http"

	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/utils"
	"github.com/gserrano-dev/portfolio-api/models"
)

func (h *Handler) listReferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	references, err := h.services.ReferenceService.List(ctx)
	if err != nil {
		h.writeError(w, r, err, "Error al obtener las referencias de la base de datos")
		return
	}

	count := len(references)
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Referencias obtenidas correctamente",
		Count:   &count,
		Data:    references,
	}, http.StatusOK)
}

func (h *Handler) getReference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err, "ID inválido")
		return
	}

	reference, err := h.services.ReferenceService.Get(ctx, id)
	if err != nil {
		h.writeError(w, r, err, "Error al obtener la referencia")
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: reference}, http.StatusOK)
}

func (h *Handler) createReference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Response{Success: false, Error: "JSON inválido"}, http.StatusBadRequest)
		return
	}

	reference, err := h.services.ReferenceService.Create(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "Error al crear la referencia")
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Referencia creada exitosamente",
		Data:    reference,
	}, http.StatusCreated)
}
