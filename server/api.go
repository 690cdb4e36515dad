package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func errNoActiveSession() error {
	return apperrors.ErrNoActiveSession
}

// writeError maps the shared error taxonomy to HTTP statuses. Identity
// errors deliberately carry a generic message; detail stays in the log.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed"})
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case apperrors.Is(err, apperrors.ErrNoActiveSession):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no active session"})
	case apperrors.Is(err, apperrors.ErrAccountAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "account already exists"})
	case apperrors.Is(err, apperrors.ErrTaskNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "task not found"})
	default:
		s.logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrapf(apperrors.ErrValidation, "decode request body: %v", err)
	}
	return nil
}
