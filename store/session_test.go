package store_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/store"
)

// unsignedJWT builds a syntactically valid JWT with the given exp claim.
// The session layer only inspects claims, it never verifies signatures.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]interface{}{"exp": exp.Unix()})
	require.NoError(t, err)
	return fmt.Sprintf("%s.%s.", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestSession_LoginLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := store.LoadSession(path)

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, models.SessionInfo{}, s.Info())

	s.Login(models.RoleGreffierAudience, "opaque-token", "Afi MENSAH", "a.mensah@justice.bj")
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, models.RoleGreffierAudience, s.Role())
	assert.Equal(t, "Afi MENSAH", s.FullName())
	assert.Equal(t, "opaque-token", s.Token())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.FullName())
}

func TestSession_FullNameFallsBackToEmailLocalPart(t *testing.T) {
	s := store.LoadSession(filepath.Join(t.TempDir(), "session.json"))
	s.Login(models.RoleMagistrat, "tok", "   ", "k.ablo@justice.bj")
	assert.Equal(t, "k.ablo", s.FullName())
}

func TestSession_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := store.LoadSession(path)
	first.Login(models.RoleChefGreffe, "opaque-token", "Chef", "chef@justice.bj")

	second := store.LoadSession(path)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, models.RoleChefGreffe, second.Role())
	assert.Equal(t, "Chef", second.FullName())
	assert.Equal(t, "opaque-token", second.Token())
}

func TestSession_ExpiredJWTIsNotAuthenticated(t *testing.T) {
	s := store.LoadSession(filepath.Join(t.TempDir(), "session.json"))

	s.Login(models.RoleMagistrat, unsignedJWT(t, time.Now().Add(-time.Hour)), "J", "j@justice.bj")
	assert.False(t, s.IsAuthenticated())

	s.Login(models.RoleMagistrat, unsignedJWT(t, time.Now().Add(time.Hour)), "J", "j@justice.bj")
	assert.True(t, s.IsAuthenticated())
}

func TestLoadSession_CorruptFileStartsUnauthenticated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := store.LoadSession(path)
	assert.False(t, s.IsAuthenticated())
}
