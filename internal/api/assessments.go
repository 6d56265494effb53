package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/lunara-health/lunara/internal/assessment"
	"github.com/lunara-health/lunara/internal/services"
)

// GET /api/assessments/domains
func (rt *Router) handleDomains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"domains": assessment.Domains()})
}

// GET /api/assessments/questions?domain=xx
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	domain, err := assessment.ParseDomain(r.URL.Query().Get("domain"))
	if err != nil {
		writeError(w, services.NewInvalidError(err.Error()))
		return
	}
	questions, err := assessment.QuestionsFor(domain)
	if err != nil {
		writeError(w, services.NewInvalidError(err.Error()))
		return
	}
	type outQuestion struct {
		ID      string   `json:"id"`
		Prompt  string   `json:"prompt"`
		Options []string `json:"options"`
	}
	out := make([]outQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, outQuestion{ID: q.ID, Prompt: q.Prompt, Options: q.Options})
	}
	writeJSON(w, http.StatusOK, map[string]any{"domain": domain, "questions": out, "count": len(out)})
}

// POST /api/assessments  { domain, answers: [{question_id, value}] }
// GET  /api/assessments
func (rt *Router) handleAssessments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req services.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := rt.assessments.Submit(userID(r), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	case http.MethodGet:
		records, err := rt.assessments.List(userID(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"assessments": records})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/assessments/latest
func (rt *Router) handleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	statuses, err := rt.assessments.LatestByDomain(userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"domains": statuses})
}

// GET /api/assessments/{id}
func (rt *Router) handleAssessmentScoped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/assessments/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	detail, err := rt.assessments.Get(userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// GET /api/analytics/trend?domain=xx
func (rt *Router) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	trend, err := rt.analytics.Trend(userID(r), assessment.Domain(r.URL.Query().Get("domain")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trend": trend})
}

// GET /api/analytics/summary?domain=xx
func (rt *Router) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	summary, err := rt.analytics.Summary(userID(r), assessment.Domain(r.URL.Query().Get("domain")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GET /api/export?format=long|score
func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "long"
	}
	records, err := rt.assessments.List(userID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	switch format {
	case "long":
		rows := []services.LongRow{}
		for _, rec := range records {
			answers, err := rt.store.ListAnswersByAssessment(rec.ID)
			if err != nil {
				writeError(w, err)
				return
			}
			for _, a := range answers {
				rows = append(rows, services.LongRow{
					AssessmentID: rec.ID,
					Domain:       string(rec.Domain),
					QuestionID:   a.QuestionID,
					Value:        a.Value,
					SubmittedAt:  rec.SubmittedAt.Format(time.RFC3339),
				})
			}
		}
		b, err := services.ExportLongCSV(rows)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=assessments_long.csv")
		_, _ = w.Write(b)
	case "score":
		rows := make([]services.ScoreRow, 0, len(records))
		for _, rec := range records {
			rows = append(rows, services.ScoreRow{
				AssessmentID: rec.ID,
				Domain:       string(rec.Domain),
				Score:        rec.Score,
				SubmittedAt:  rec.SubmittedAt.Format(time.RFC3339),
			})
		}
		b, err := services.ExportScoreCSV(rows)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=assessments_score.csv")
		_, _ = w.Write(b)
	default:
		http.Error(w, "unsupported format", http.StatusBadRequest)
	}
}
