package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/utils"
	"github.com/gserrano-dev/portfolio-api/models"
)

// Pagination defaults for the comment list. A missing or non-numeric
// query parameter falls back to these values rather than erroring.
const (
	defaultPage  = 1
	defaultLimit = 6
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.ListCommentsRequest{
		Page:  queryInt(r, "page", defaultPage),
		Limit: queryInt(r, "limit", defaultLimit),
	}

	page, err := h.services.CommentService.List(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "Error al obtener los comentarios de la base de datos")
		return
	}

	utils.WriteJSON(w, models.CommentListResponse{
		Success:         true,
		Message:         "Comentarios obtenidos correctamente",
		Comments:        page.Comments,
		TotalPages:      page.TotalPages,
		CurrentPage:     page.CurrentPage,
		TotalComments:   page.TotalComments,
		CommentsPerPage: req.Limit,
	}, http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err, "ID inválido")
		return
	}

	comment, err := h.services.CommentService.Get(ctx, id)
	if err != nil {
		h.writeError(w, r, err, "Error al obtener el comentario")
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: comment}, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Response{Success: false, Error: "JSON inválido"}, http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.Create(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "Error al crear el comentario en la base de datos")
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Comentario creado exitosamente",
		Data:    comment,
	}, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err, "ID inválido")
		return
	}

	comment, err := h.services.CommentService.Delete(ctx, id)
	if err != nil {
		h.writeError(w, r, err, "Error al eliminar el comentario")
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Comentario eliminado exitosamente",
		Data:    comment,
	}, http.StatusOK)
}

func (h *Handler) commentStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.services.CommentService.Stats(ctx)
	if err != nil {
		h.writeError(w, r, err, "Error al obtener las estadísticas")
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: stats}, http.StatusOK)
}

// queryInt reads an integer query parameter, falling back to def when
// the parameter is missing, not numeric, or not positive.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}

	return value
}

// pathID parses the {id} chi route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}

	return id, nil
}
