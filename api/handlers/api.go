package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/config"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/registry"
	"github.com/siga-greffe/greffe-api/store"
)

// App stores the router, the registry-backed store and the middleware
// pieces, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Store    *store.Store
	Guardian *api.Guardian
	Metrics  *api.MetricsCollector
	Hub      *Hub

	auth  registry.AuthService
	stats registry.StatsService
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	mw := a.Guardian.Middleware

	af := Affaire{Store: a.Store, Hub: a.Hub}
	dec := Decision{Store: a.Store, Hub: a.Hub}
	pl := Plumitif{Store: a.Store}
	aud := Audience{Store: a.Store}
	st := Stats{Stats: a.stats}
	au := Auth{Auth: a.auth, Store: a.Store, Guardian: a.Guardian}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/login", http.HandlerFunc(au.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/logout", mw(http.HandlerFunc(au.LogoutHandler))).Methods("DELETE")
	apiCreate.Handle("/auth/session", http.HandlerFunc(au.SessionHandler)).Methods("GET")

	apiCreate.Handle("/affaires", mw(http.HandlerFunc(af.AffaireHandler))).Methods("GET")
	apiCreate.Handle("/affaires/refresh", mw(http.HandlerFunc(af.RefreshAffairesHandler))).Methods("POST")
	apiCreate.Handle("/affaires/enroler", mw(http.HandlerFunc(af.EnrolerAffaireHandler))).Methods("POST")
	apiCreate.Handle("/affaire/{affaire_id}", mw(http.HandlerFunc(af.AffaireByIDHandler))).Methods("GET")
	apiCreate.Handle("/affaire/{affaire_id}", mw(http.HandlerFunc(af.UpdateAffaireHandler))).Methods("PATCH")
	apiCreate.Handle("/affaire/{affaire_id}/plumitifs", mw(http.HandlerFunc(pl.PlumitifsByAffaireHandler))).Methods("GET")
	apiCreate.Handle("/affaire/{affaire_id}/decision", mw(http.HandlerFunc(dec.SubmitDecisionHandler))).Methods("POST")

	apiCreate.Handle("/decisions/{domaine}", mw(http.HandlerFunc(dec.VocabularyHandler))).Methods("GET")

	apiCreate.Handle("/audiences", mw(http.HandlerFunc(aud.AudienceHandler))).Methods("GET")
	apiCreate.Handle("/audiences", mw(http.HandlerFunc(aud.CreateAudienceHandler))).Methods("POST")
	apiCreate.Handle("/audiences/docket", mw(http.HandlerFunc(aud.DailyDocketHandler))).Methods("GET")

	apiCreate.Handle("/stats/dashboard", mw(http.HandlerFunc(st.DashboardHandler))).Methods("GET")
	apiCreate.Handle("/stats/reports", mw(http.HandlerFunc(st.ReportsHandler))).Methods("GET")
	apiCreate.Handle("/stats/sync-db", mw(http.HandlerFunc(st.SyncHandler))).Methods("POST")

	apiCreate.Handle("/live", http.HandlerFunc(a.Hub.ServeWS)).Methods("GET")

	r.Handle("/metrics", mw(http.HandlerFunc(a.metricsHandler))).Methods("GET")

	r.Use(a.Metrics.MetricsMiddleware)
	return r
}

// Initialize is invoked by main to build the registry client, the store
// and the router
func (a *App) Initialize() error {
	session := store.LoadSession(a.Config.SessionFile)
	client := registry.NewClient(a.Config.RegistryURL, session.Token)

	a.Store = store.New(
		registry.NewAffaireService(client),
		registry.NewAudienceService(client),
		registry.NewPlumitifService(client),
		session,
	)
	a.auth = registry.NewAuthService(client)
	a.stats = registry.NewStatsService(client)

	a.Guardian = api.NewGuardian()
	a.Metrics = api.NewMetricsCollector()
	a.Hub = NewHub()

	zap.S().Infow("greffe-api wired to registry backend", "registry", a.Config.RegistryURL)

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(map[string]interface{}{
		"summary": a.Metrics.Summary(),
		"routes":  a.Metrics.Routes(),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
