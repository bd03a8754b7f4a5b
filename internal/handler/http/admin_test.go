package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chulcheck/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func postAuth(t *testing.T, handler AdminHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.Auth(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth", strings.NewReader(body)))
	return rec
}

func TestAdminAuth_PlainPassword(t *testing.T) {
	jwtService := jwt.NewJWTService("test-jwt-secret", "12h")
	handler := NewAdminHandler("hunter2", jwtService)

	rec := postAuth(t, handler, `{"password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
	assert.Contains(t, rec.Body.String(), "expires_at")

	rec = postAuth(t, handler, `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-jwt-secret", "12h")
	handler := NewAdminHandler(string(hash), jwtService)

	rec := postAuth(t, handler, `{"password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postAuth(t, handler, `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_EmptyPassword(t *testing.T) {
	handler := NewAdminHandler("hunter2", jwt.NewJWTService("test-jwt-secret", "12h"))

	rec := postAuth(t, handler, `{"password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postAuth(t, handler, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
