package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
)

// Guardian holds the go-guardian authenticator and its token cache. It is
// created once at startup and handed to the router explicitly.
type Guardian struct {
	authenticator auth.Authenticator
	cache         store.Cache
}

// NewGuardian sets up go-guardian with a cached bearer strategy. Tokens are
// minted by the registry backend at login; the gateway only caches them.
func NewGuardian() *Guardian {
	g := &Guardian{
		authenticator: auth.New(),
		cache:         store.NewFIFO(context.Background(), time.Hour*24),
	}
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, g.cache)
	g.authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
	return g
}

// Middleware adds some basic header authentication around accessing the routes
func (g *Guardian) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := g.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("User %s Authenticated\n", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// RegisterToken caches a backend-issued bearer token so subsequent requests
// carrying it pass the middleware.
func (g *Guardian) RegisterToken(token, email string, r *http.Request) {
	authUser := auth.NewDefaultUser(email, email, nil, nil)
	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, token, authUser, r)
}

// RevokeToken drops a bearer token from the cache.
func (g *Guardian) RevokeToken(token string, r *http.Request) {
	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, token, r)
}
