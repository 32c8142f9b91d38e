package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/config"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/registry"
	"github.com/siga-greffe/greffe-api/store"
)

// Auth exported for testing purposes
type Auth struct {
	Auth     registry.AuthService
	Store    *store.Store
	Guardian *api.Guardian
}

// LoginHandler authenticates against the registry backend, persists the
// session and caches the backend token for the gateway middleware
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		config.ErrorStatus("missing credentials", http.StatusBadRequest, w,
			fmt.Errorf("email et mot de passe sont obligatoires"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	data, err := a.Auth.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		config.ErrorStatus("login failed", http.StatusUnauthorized, w, err)
		return
	}

	email := data.Email
	if email == "" {
		email = creds.Email
	}
	role := resolveRole(data.Roles, creds.Role)

	a.Store.Session.Login(role, data.AccessToken, data.NomComplet, email)
	if a.Guardian != nil {
		a.Guardian.RegisterToken(data.AccessToken, email, r)
	}

	zap.S().Infow("registry session opened", "email", email, "role", role)

	writeJSON(w, map[string]interface{}{
		"token":   data.AccessToken,
		"session": a.Store.Session.Info(),
	})
}

// LogoutHandler closes the session and revokes the cached bearer token
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	reqToken := r.Header.Get("Authorization")
	if split := strings.Split(reqToken, "Bearer "); len(split) == 2 {
		if a.Guardian != nil {
			a.Guardian.RevokeToken(split[1], r)
		}
	}
	a.Store.Session.Logout()

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"loggedOut": true}`))
}

// SessionHandler returns the current session description
func (a Auth) SessionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.Store.Session.Info())
}

// resolveRole picks the registry role for the session: the first known
// role the backend reports, then the role the form claimed, then the
// front-desk default.
func resolveRole(backendRoles []string, claimed models.UserRole) models.UserRole {
	known := map[models.UserRole]bool{
		models.RoleGreffierAccueil:  true,
		models.RoleGreffierAudience: true,
		models.RoleMagistrat:        true,
		models.RoleChefGreffe:       true,
		models.RoleInspecteur:       true,
		models.RoleDGT:              true,
	}
	for _, r := range backendRoles {
		if role := models.UserRole(strings.ToUpper(r)); known[role] {
			return role
		}
	}
	if known[claimed] {
		return claimed
	}
	return models.RoleGreffierAccueil
}
