package http

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chulcheck/attendance-backend-go/internal/handler/http/response"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/jwt"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler interface {
	Auth(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	// password is the configured shared secret, either plain text or a
	// bcrypt hash ($2 prefix).
	password   string
	jwtService jwt.Service
}

func NewAdminHandler(password string, jwtService jwt.Service) AdminHandler {
	return &adminHandlerImpl{
		password:   password,
		jwtService: jwtService,
	}
}

type adminAuthRequest struct {
	Password string `json:"password"`
}

// Auth implements AdminHandler. A correct password yields an admin session
// token for the administrative endpoints.
func (h *adminHandlerImpl) Auth(w http.ResponseWriter, r *http.Request) {
	var req adminAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode admin auth request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if validator.IsEmpty(req.Password) {
		response.BadRequest(w, "password is required", nil)
		return
	}

	if !h.passwordMatches(req.Password) {
		response.Unauthorized(w, "Wrong password")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAdminToken()
	if err != nil {
		slog.Error("Failed to generate admin token", "error", err)
		response.InternalServerError(w, "Failed to create admin session")
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_at": expiresAt,
	})
}

func (h *adminHandlerImpl) passwordMatches(candidate string) bool {
	if strings.HasPrefix(h.password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(h.password), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.password), []byte(candidate)) == 1
}
