package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/internal/domain"
)

func (s *Server) handleMealLogAdd(w http.ResponseWriter, r *http.Request) {
	var entry domain.MealLogEntry
	if err := parseJSON(r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stored, err := s.mealLog.AddMeal(r.Context(), entry)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleMealLogSummary(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		writeError(w, http.StatusBadRequest, errors.New("userId is required"))
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("userId must be an integer"))
		return
	}

	entries, err := s.mealLog.GetTodayMeals(r.Context(), userID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.MealLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
