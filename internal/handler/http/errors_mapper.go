package http

import (
	"errors"
	"net/http"

	"github.com/gserrano-dev/portfolio-api/internal/adapter"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/service"
	"github.com/gserrano-dev/portfolio-api/internal/store"
	"github.com/gserrano-dev/portfolio-api/internal/utils"
	"github.com/gserrano-dev/portfolio-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrCommentFieldsRequired:   http.StatusBadRequest,
	service.ErrReferenceFieldsRequired: http.StatusBadRequest,
	service.ErrNombreTooLong:           http.StatusBadRequest,
	service.ErrComentarioTooLong:       http.StatusBadRequest,
	service.ErrCartaTooLong:            http.StatusBadRequest,
	service.ErrCaptchaRequired:         http.StatusBadRequest,
	service.ErrCaptchaRejected:         http.StatusBadRequest,

	store.ErrCommentNotFound:   http.StatusNotFound,
	store.ErrReferenceNotFound: http.StatusNotFound,

	errInvalidID: http.StatusBadRequest,

	adapter.ErrCaptchaVerification: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the Spanish client-facing text for every error
// that is safe to show. Errors absent from this map fall back to the
// operation-specific generic message, so internal detail never leaks.
var errorMessageMap = map[error]string{
	service.ErrCommentFieldsRequired:   "Todos los campos son requeridos: nombre, comentario",
	service.ErrReferenceFieldsRequired: "Todos los campos son requeridos: nombre, titulo, correo, carta",
	service.ErrNombreTooLong:           "El nombre no puede exceder los 100 caracteres",
	service.ErrComentarioTooLong:       "El comentario no puede exceder los 1000 caracteres",
	service.ErrCartaTooLong:            "La carta no puede exceder los 1000 caracteres",
	service.ErrCaptchaRequired:         "Captcha requerido",
	service.ErrCaptchaRejected:         "Captcha no válido. Por favor, inténtalo de nuevo.",

	store.ErrCommentNotFound:   "Comentario no encontrado",
	store.ErrReferenceNotFound: "Referencia no encontrada",

	errInvalidID: "ID inválido",

	adapter.ErrCaptchaVerification: "Error al verificar el captcha",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err with request context and answers with the uniform
// error envelope. fallback is the user-safe generic message used when
// err carries no client-facing text of its own.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := fallback
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			message = msg
			break
		}
	}

	log.Err(err).Int("status", status).Msg(message)
	utils.WriteJSON(w, models.Response{Success: false, Error: message}, status)
}
