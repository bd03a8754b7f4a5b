package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("test-signing-secret", "http://localhost:3000")
	require.NoError(t, err)
	return svc
}

func TestNewService_EmptySecret(t *testing.T) {
	_, err := NewService("", "http://localhost:3000")
	assert.Error(t, err)
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := newTestService(t)

	first := svc.Generate(ActionIn, "2025-03-15")
	second := svc.Generate(ActionIn, "2025-03-15")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}

func TestGenerate_BindsActionAndDate(t *testing.T) {
	svc := newTestService(t)

	today := svc.Generate(ActionIn, "2025-03-15")
	tomorrow := svc.Generate(ActionIn, "2025-03-16")
	out := svc.Generate(ActionOut, "2025-03-15")

	assert.NotEqual(t, today, tomorrow)
	assert.NotEqual(t, today, out)
}

func TestVerify(t *testing.T) {
	svc := newTestService(t)
	tok := svc.Generate(ActionOut, "2025-03-15")

	assert.True(t, svc.Verify(ActionOut, tok, "2025-03-15"))
	assert.False(t, svc.Verify(ActionIn, tok, "2025-03-15"), "wrong action")
	assert.False(t, svc.Verify(ActionOut, tok, "2025-03-16"), "wrong date")
	assert.False(t, svc.Verify(ActionOut, tok[:63]+"0", "2025-03-15"), "tampered token")
	assert.False(t, svc.Verify(ActionOut, "", "2025-03-15"))
}

func TestVerify_DifferentSecrets(t *testing.T) {
	a, err := NewService("secret-a", "")
	require.NoError(t, err)
	b, err := NewService("secret-b", "")
	require.NoError(t, err)

	tok := a.Generate(ActionIn, "2025-03-15")
	assert.False(t, b.Verify(ActionIn, tok, "2025-03-15"))
}

func TestCheckinURL(t *testing.T) {
	svc := newTestService(t)

	url := svc.CheckinURL(ActionIn, "2025-03-15")
	assert.Equal(t, "http://localhost:3000/checkin?action=in&token="+svc.Generate(ActionIn, "2025-03-15"), url)
}

func TestActionValid(t *testing.T) {
	assert.True(t, ActionIn.Valid())
	assert.True(t, ActionOut.Valid())
	assert.False(t, Action("IN").Valid())
	assert.False(t, Action("").Valid())
}
