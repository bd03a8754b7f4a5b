package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies admin session tokens. The QR submission flow is
// capability-gated by the day-bound token instead; JWTs only protect the
// administrative surface.
type Service interface {
	GenerateAdminToken() (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey         string
	sessionExpiration string
	tokenAuth         *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, sessionExpiration string) Service {
	return &JWTService{
		secretKey:         secretKey,
		sessionExpiration: sessionExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAdminToken issues a session token after a successful password check.
func (j *JWTService) GenerateAdminToken() (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"role": "admin",
		"type": "session",
		"iat":  time.Now().Unix(),
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}
