package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lunara-health/lunara/internal/services"
)

// POST /api/goals  { title, notes, target_date }
// GET  /api/goals
func (rt *Router) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var in services.GoalInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		goal, err := rt.goals.Create(userID(r), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	case http.MethodGet:
		goals, err := rt.goals.List(userID(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /api/goals/{id}/complete
// POST /api/goals/{id}/checkin
// GET  /api/goals/{id}/streak
func (rt *Router) handleGoalScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/goals/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	id, action := parts[0], parts[1]
	switch {
	case action == "complete" && r.Method == http.MethodPost:
		goal, err := rt.goals.Complete(userID(r), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	case action == "checkin" && r.Method == http.MethodPost:
		checkin, err := rt.goals.CheckIn(userID(r), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, checkin)
	case action == "streak" && r.Method == http.MethodGet:
		streak, err := rt.goals.Streak(userID(r), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"goal_id": id, "streak": streak})
	default:
		http.NotFound(w, r)
	}
}
