package handler

import (
	"errors"
	"net/http"

	"product-insights/internal/auth"
	"product-insights/internal/middleware"
	"product-insights/internal/model"
	"product-insights/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Signup handles POST /signup requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	if err := h.service.Signup(r.Context(), creds); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			h.logger.Warn().
				Str("request_id", middleware.RequestIDFromContext(r.Context())).
				Str("username", creds.Username).
				Msg("signup rejected: username taken")
		}
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, model.MsgUserCreated)
}

// Login handles POST /login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.service.Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, model.MsgInvalidCreds)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token})
}

// decodeCredentials reads and validates the body. It writes the error response
// and returns false when the request cannot proceed.
func (h *AuthHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (model.Credentials, bool) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return model.Credentials{}, false
	}

	creds, err := auth.ValidateCredentials(body)
	if err != nil {
		var verrs auth.ValidationErrors
		if errors.As(err, &verrs) {
			h.logger.Debug().
				Str("request_id", middleware.RequestIDFromContext(r.Context())).
				Err(err).
				Msg("credentials rejected")
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: verrs})
			return model.Credentials{}, false
		}
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return model.Credentials{}, false
	}

	return creds, true
}
