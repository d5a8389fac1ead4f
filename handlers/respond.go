package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto status codes: 400 validation,
// 404 missing document or reference, 409 conflict, 503 storage. Storage
// details are logged, never sent to the client.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	var (
		validationErr *models.ValidationError
		referenceErr  *models.ReferenceNotFoundError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.UniquenessConflictError
		storageErr    *models.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Message, Field: validationErr.Field})
	case errors.As(err, &referenceErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: referenceErr.Error(), Field: referenceErr.Field})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: conflictErr.Error(), Field: conflictErr.Field})
	case errors.Is(err, models.ErrNoSeatsAvailable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "No hay asientos disponibles."})
	case errors.As(err, &storageErr):
		log.Error("storage unavailable", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "El almacenamiento no está disponible, intente de nuevo."})
	default:
		log.Error("unexpected handler error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error interno."})
	}
}

// decodeJSON decodes a request body strictly: unknown fields are rejected
// rather than silently dropped.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &models.ValidationError{
			Field:   "body",
			Rule:    "format",
			Message: "el cuerpo de la petición no es válido",
		}
	}
	return nil
}

// noExpand rejects an expand parameter on a type without reference fields.
func noExpand(r *http.Request) error {
	if r.URL.Query().Get("expand") != "" {
		return &models.ValidationError{
			Field:   "expand",
			Rule:    "unknown_field",
			Message: "el campo indicado no es una referencia",
		}
	}
	return nil
}
