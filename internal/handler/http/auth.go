// Package http exposes the authentication service over HTTP.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/iamdarshshah/devcollective/internal/service"
	"github.com/iamdarshshah/devcollective/pkg/validator"
)

// sessionCookieName is the client-held session capability. The cookie value
// is an opaque token; the server maps it back to a user id.
const sessionCookieName = "devcollective_session"

// AuthHandler handles HTTP requests for auth endpoints.
type AuthHandler struct {
	service      *service.AuthService
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler. cookieSecure should be true
// everywhere except local development over plain HTTP.
func NewAuthHandler(svc *service.AuthService, cookieSecure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: svc, cookieSecure: cookieSecure, logger: logger}
}

// --- Request DTOs ---

// Bodies are decoded in two steps. The raw form captures each field as
// json.RawMessage so a number, object or null where a string belongs is
// reported as its own violation instead of a generic decode failure; the
// typed form then runs the field-level rules. All violations are aggregated
// into one response.

type rawRegisterRequest struct {
	Email     json.RawMessage `json:"email"`
	Password  json.RawMessage `json:"password"`
	FirstName json.RawMessage `json:"firstName"`
	LastName  json.RawMessage `json:"lastName"`
}

// RegisterRequest is the typed JSON request body for registration. The
// password cap matches bcrypt's 72-byte input limit, so an over-length
// password is a field violation instead of a hashing failure.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email_format"`
	Password  string `json:"password" validate:"required,min=8,max_bytes=72"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type rawLoginRequest struct {
	Email    json.RawMessage `json:"email"`
	Password json.RawMessage `json:"password"`
}

// asString decodes a raw field into dst when it is a JSON string. A missing
// field is left to the required rule; any other JSON type records a type
// violation.
func asString(ve *validator.ValidationError, field string, raw json.RawMessage, dst *string) {
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		ve.Add(field, "must be a string")
	}
}

// decodeRegisterRequest parses and validates a registration body, returning
// every violation at once.
func decodeRegisterRequest(r *http.Request) (RegisterRequest, *validator.ValidationError) {
	ve := &validator.ValidationError{}
	var req RegisterRequest

	var raw rawRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		ve.Add("body", "must be a JSON object")
		return req, ve
	}

	asString(ve, "email", raw.Email, &req.Email)
	asString(ve, "password", raw.Password, &req.Password)
	asString(ve, "firstName", raw.FirstName, &req.FirstName)
	asString(ve, "lastName", raw.LastName, &req.LastName)

	if err := validator.Validate(req); err != nil {
		if fieldErrs, ok := err.(*validator.ValidationError); ok {
			for _, v := range fieldErrs.Violations {
				// A field already rejected for its type gets no
				// second message about its (zero) value.
				if !ve.Has(v.Field) {
					ve.Add(v.Field, v.Message)
				}
			}
		} else {
			ve.Add("body", "is invalid")
		}
	}

	if ve.Empty() {
		return req, nil
	}
	return req, ve
}

// --- Handlers ---

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit

	req, ve := decodeRegisterRequest(r)
	if ve != nil {
		writeErrors(w, http.StatusBadRequest, ve.List())
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeAppError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

// Login handles POST /auth/login. A body that is not even well-formed input
// gets the same empty 401 as bad credentials: nothing about the request may
// influence what a failed login reveals.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit

	var raw rawLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeUnauthorized(w)
		return
	}

	ve := &validator.ValidationError{}
	var email, password string
	asString(ve, "email", raw.Email, &email)
	asString(ve, "password", raw.Password, &password)
	if !ve.Empty() || email == "" || password == "" {
		writeUnauthorized(w)
		return
	}

	user, token, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		writeAppError(w, r, err, h.logger)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, user.Public())
}

// Check handles POST /auth/check.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r.Context(), h.sessionToken(r))
	if err != nil {
		writeAppError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), h.sessionToken(r)); err != nil {
		writeAppError(w, r, err, h.logger)
		return
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, struct{}{})
}

// ConfirmAccount handles GET /auth/confirmAccount?confirm=<token>&email=<email>.
// Malformed parameters are a 400 with the full violation list; well-formed
// parameters that match nothing are an empty 401.
func (h *AuthHandler) ConfirmAccount(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("confirm")
	email := r.URL.Query().Get("email")

	ve := &validator.ValidationError{}
	if token == "" {
		ve.Add("confirm", "is required")
	} else if uuid.Validate(token) != nil {
		// Issued tokens are always UUIDs; anything else is malformed
		// input, not a failed match.
		ve.Add("confirm", "must be a valid UUID")
	}
	if email == "" {
		ve.Add("email", "is required")
	} else if !validator.IsEmailAddress(email) {
		ve.Add("email", "must be a valid email address")
	}
	if !ve.Empty() {
		writeErrors(w, http.StatusBadRequest, ve.List())
		return
	}

	user, err := h.service.ConfirmAccount(r.Context(), email, token)
	if err != nil {
		writeAppError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

// --- Session cookie handling ---

func (h *AuthHandler) sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
