package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/authkit/authkit-go/internal/captcha"
	"github.com/authkit/authkit-go/internal/middleware"
	"github.com/authkit/authkit-go/internal/model"
	"github.com/authkit/authkit-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication. Successful register
// and login responses carry the session token both as a cookie (via the
// SessionWriter) and in the body, so non-cookie clients can use bearer auth.
type AuthHandler struct {
	service  *service.AuthService
	captcha  *captcha.Verifier
	sessions *SessionWriter
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, verifier *captcha.Verifier, sessions *SessionWriter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service:  svc,
		captcha:  verifier,
		sessions: sessions,
		validate: newValidator(),
		logger:   logger,
	}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusBadRequest, messageResponse("Email already in use"))
			return
		}
		h.internalError(w, "register failed", err)
		return
	}

	h.sessions.Set(w, resp.Token)
	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login requests. Unknown email and wrong
// password return the identical response — the service guarantees one error
// for both.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, messageResponse("Invalid credentials"))
			return
		}
		h.internalError(w, "login failed", err)
		return
	}

	h.sessions.Set(w, resp.Token)
	writeJSON(w, http.StatusOK, resp)
}

// HandleVerifyBot handles POST /api/auth/verify-recaptcha requests. The
// verdict is fail-closed: provider errors and timeouts read the same as a
// rejected challenge.
func (h *AuthHandler) HandleVerifyBot(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.VerifyBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return
	}

	outcome, err := h.captcha.Verify(r.Context(), req.Token)
	if err != nil {
		h.logger.Warn("captcha verification error", "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse("verification failed"))
		return
	}
	if !outcome.Success {
		writeJSON(w, http.StatusBadRequest, messageResponse("verification failed"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("verified"))
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.internalError(w, "loading user failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.UserResponse{"user": user})
}

// decode reads, parses and validates a JSON request body. It writes the
// error response itself and reports whether the handler should continue.
func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return false
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": validationErrors(err)})
		return false
	}

	return true
}

// internalError logs the underlying cause and returns a generic message.
// Raw error text never reaches the client.
func (h *AuthHandler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
}
