// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"fittrack/internal/app"
)

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	hydration *app.HydrationService
	nutrition *app.NutritionService
	mealLog   *app.MealLogService
	trends    *app.TrendsService
	store     Pinger

	log           zerolog.Logger
	webDir        string
	allowedOrigin string
	upgrader      websocket.Upgrader
}

// New creates a Server wired to the given application services.
func New(hy *app.HydrationService, nu *app.NutritionService, ml *app.MealLogService, tr *app.TrendsService, store Pinger) *Server {
	s := &Server{
		hydration: hy,
		nutrition: nu,
		mealLog:   ml,
		trends:    tr,
		store:     store,
		log:       zerolog.Nop(),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

// WithLogger sets the request and channel logger.
func (s *Server) WithLogger(l zerolog.Logger) *Server {
	s.log = l
	return s
}

// WithWebDir serves a static frontend from dir for paths no API route claims.
func (s *Server) WithWebDir(dir string) *Server {
	s.webDir = dir
	return s
}

// WithAllowedOrigin sets the browser origin permitted by CORS and the
// channel upgrade. "*" allows any origin.
func (s *Server) WithAllowedOrigin(origin string) *Server {
	s.allowedOrigin = origin
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/hydration/add", s.handleHydrationAdd).Methods(http.MethodPost)
	r.HandleFunc("/hydration/summary", s.handleHydrationSummary).Methods(http.MethodGet)
	r.HandleFunc("/hydration/week", s.handleHydrationWeek).Methods(http.MethodGet)

	r.HandleFunc("/nutrition/add", s.handleNutritionAdd).Methods(http.MethodPost)
	r.HandleFunc("/nutrition/summary", s.handleNutritionSummary).Methods(http.MethodGet)

	r.HandleFunc("/api/nutrition/add", s.handleMealLogAdd).Methods(http.MethodPost)
	r.HandleFunc("/api/nutrition/summary", s.handleMealLogSummary).Methods(http.MethodGet)

	r.HandleFunc("/charts/daily", s.handleChartsDaily).Methods(http.MethodGet)

	r.HandleFunc("/ws", s.handleChannel).Methods(http.MethodGet)

	if s.webDir != "" {
		r.PathPrefix("/").Handler(spaFromDisk(s.webDir)).Methods(http.MethodGet, http.MethodHead)
	}

	return s.recoverMiddleware(s.loggingMiddleware(s.corsMiddleware(withNoCache(r))))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.log.Error().Stack().Err(err).Msg("store ping failed")
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
