package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"product-insights/internal/auth"
	"product-insights/internal/middleware"
	"product-insights/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies; every endpoint takes a small JSON object.
const maxBodyBytes = 1 << 20

// ValidationErrorResponse is the 400 body for rejected credentials.
type ValidationErrorResponse struct {
	Errors auth.ValidationErrors `json:"errors"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent.
		return
	}
}

// writeMessage writes a {"message": ...} body.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError logs err and writes message. Internal detail never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error, logger zerolog.Logger) {
	logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("username", middleware.UsernameFromContext(r.Context())).
		Int("status", status).
		Msg("handler error")
	writeMessage(w, status, message)
}

// readBody reads the request body up to maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// NotFound handles requests for unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed handles requests with an unsupported method for a known path.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
