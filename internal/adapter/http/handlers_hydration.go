package adapthttp

import (
	"net/http"

	"fittrack/internal/domain"
)

func (s *Server) handleHydrationAdd(w http.ResponseWriter, r *http.Request) {
	day, err := s.hydration.AddCup(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleHydrationSummary(w http.ResponseWriter, r *http.Request) {
	day, err := s.hydration.GetSummary(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleHydrationWeek(w http.ResponseWriter, r *http.Request) {
	days, err := s.hydration.GetWeek(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if days == nil {
		days = []domain.HydrationDay{}
	}
	writeJSON(w, http.StatusOK, days)
}
