package api

import (
	"encoding/json"
	"net/http"

	"github.com/lunara-health/lunara/internal/middleware"
	"github.com/lunara-health/lunara/internal/services"
)

type Router struct {
	store       Store
	auth        *services.AuthService
	assessments *services.AssessmentService
	journal     *services.JournalService
	goals       *services.GoalService
	analytics   *services.AnalyticsService
}

func NewRouter(store Store) *Router {
	return &Router{
		store:       store,
		auth:        services.NewAuthService(store, middleware.SignToken),
		assessments: services.NewAssessmentService(store),
		journal:     services.NewJournalService(store),
		goals:       services.NewGoalService(store),
		analytics:   services.NewAnalyticsService(store),
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", rt.handleRegister)          // POST
	mux.HandleFunc("/api/auth/login", rt.handleLogin)                // POST
	mux.HandleFunc("/api/assessments/domains", rt.handleDomains)     // GET
	mux.HandleFunc("/api/assessments/questions", rt.handleQuestions) // GET ?domain=
	mux.HandleFunc("/api/assessments/latest", rt.handleLatest)       // GET
	mux.HandleFunc("/api/assessments", rt.handleAssessments)         // POST submit, GET list
	mux.HandleFunc("/api/assessments/", rt.handleAssessmentScoped)   // GET /api/assessments/{id}
	mux.HandleFunc("/api/analytics/trend", rt.handleTrend)           // GET ?domain=
	mux.HandleFunc("/api/analytics/summary", rt.handleSummary)       // GET ?domain=
	mux.HandleFunc("/api/export", rt.handleExport)                   // GET ?format=long|score
	mux.HandleFunc("/api/journal", rt.handleJournal)                 // POST, GET
	mux.HandleFunc("/api/journal/", rt.handleJournalScoped)          // GET/PUT/DELETE /api/journal/{id}
	mux.HandleFunc("/api/goals", rt.handleGoals)                     // POST, GET
	mux.HandleFunc("/api/goals/", rt.handleGoalScoped)               // POST {id}/complete|checkin, GET {id}/streak
}

// userID pulls the authenticated user from the request context; empty when
// the request carries no valid token (services reject that as unauthorized).
func userID(r *http.Request) string {
	uid, _ := middleware.UserIDFromContext(r.Context())
	return uid
}

func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := rt.auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": res.Token, "user_id": res.UserID, "name": res.Name})
}

func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": res.Token, "user_id": res.UserID, "name": res.Name})
}
