package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
)

// Action is the attendance direction a QR link is bound to.
type Action string

const (
	ActionIn  Action = "in"
	ActionOut Action = "out"
)

// Valid reports whether a is one of the two known actions.
func (a Action) Valid() bool {
	return a == ActionIn || a == ActionOut
}

// Service mints and verifies day-bound QR tokens. A token is
// HMAC-SHA256(secret, "<action>:<YYYY-MM-DD>") hex-encoded, so verification is
// pure recomputation: no token table, and yesterday's QR code stops verifying
// the moment the civil date rolls over.
type Service struct {
	secret  []byte
	baseURL string
}

// NewService builds a token service. An empty secret is a configuration
// error; the caller is expected to treat it as fatal at startup.
func NewService(secret, baseURL string) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: signing secret is required")
	}
	return &Service{secret: []byte(secret), baseURL: baseURL}, nil
}

// Generate derives the token for an action on a civil date (YYYY-MM-DD).
// Deterministic: the same inputs always produce the same token.
func (s *Service) Generate(action Action, date string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(string(action) + ":" + date))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the expected token and compares in constant time.
func (s *Service) Verify(action Action, token, date string) bool {
	expected := s.Generate(action, date)
	return hmac.Equal([]byte(expected), []byte(token))
}

// CheckinURL assembles the scannable link for an action on a date.
func (s *Service) CheckinURL(action Action, date string) string {
	q := url.Values{}
	q.Set("action", string(action))
	q.Set("token", s.Generate(action, date))
	return s.baseURL + "/checkin?" + q.Encode()
}
