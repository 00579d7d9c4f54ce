package adapthttp

import (
	"net/http"

	"fittrack/internal/domain"
)

func (s *Server) handleNutritionAdd(w http.ResponseWriter, r *http.Request) {
	var meal domain.Meal
	if err := parseJSON(r, &meal); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stored, err := s.nutrition.AddMeal(r.Context(), meal)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleNutritionSummary(w http.ResponseWriter, r *http.Request) {
	meals, err := s.nutrition.GetSummary(r.Context(), r.URL.Query().Get("mode"))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if meals == nil {
		meals = []domain.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}
