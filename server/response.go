package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/owlet-db/owlet/errors"
)

// envelope is the uniform success response shape.
type envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// errorEnvelope is the uniform failure response shape. Details is only set
// for instance validation failures.
type errorEnvelope struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
	Timestamp string   `json:"timestamp"`
}

func (s *Server) writeSuccess(w http.ResponseWriter, data interface{}, message string) {
	s.writeJSON(w, http.StatusOK, envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// writeServiceError maps the service error taxonomy onto HTTP status codes:
// not-found 404, validation 400, invalid-operation 409, anything else 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.IsInvalidOperation(err):
		status = http.StatusConflict
	default:
		s.logger.Errorw("Request failed", "error", err)
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorEnvelope{
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeValidationFailure(w http.ResponseWriter, details []string) {
	s.writeJSON(w, http.StatusUnprocessableEntity, errorEnvelope{
		Error:     "Validation failed",
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Errorw("Failed to encode response", "error", err)
	}
}

// readJSON decodes a JSON request body, writing a 400 on failure.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// boolQuery parses a boolean query parameter with a default.
func boolQuery(r *http.Request, key string, fallback bool) bool {
	switch r.URL.Query().Get(key) {
	case "true":
		return true
	case "false":
		return false
	default:
		return fallback
	}
}
