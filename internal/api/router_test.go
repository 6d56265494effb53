package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lunara-health/lunara/internal/middleware"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	NewRouter(NewMemoryStore()).Register(mux)
	srv := httptest.NewServer(middleware.WithAuth(mux))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	if out != nil {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func registerUser(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var reg struct {
		Token string `json:"token"`
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email":    "casey@example.com",
		"password": "Secret123!",
		"name":     "Casey",
	}, &reg)
	if resp.StatusCode != http.StatusOK || reg.Token == "" {
		t.Fatalf("register failed: status=%d token=%q", resp.StatusCode, reg.Token)
	}
	return reg.Token
}

func TestAssessmentFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	var questions struct {
		Domain    string `json:"domain"`
		Questions []struct {
			ID      string   `json:"id"`
			Prompt  string   `json:"prompt"`
			Options []string `json:"options"`
		} `json:"questions"`
		Count int `json:"count"`
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/assessments/questions?domain=mental", "", nil, &questions)
	if resp.StatusCode != http.StatusOK || questions.Count == 0 {
		t.Fatalf("questions failed: status=%d count=%d", resp.StatusCode, questions.Count)
	}

	answers := []map[string]any{}
	for _, q := range questions.Questions {
		answers = append(answers, map[string]any{"question_id": q.ID, "value": len(q.Options) - 1})
	}
	var submit struct {
		AssessmentID    string   `json:"assessment_id"`
		Score           int      `json:"score"`
		Interpretation  string   `json:"interpretation"`
		Recommendations []string `json:"recommendations"`
	}
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/assessments", token, map[string]any{
		"domain":  "mental",
		"answers": answers,
	}, &submit)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d", resp.StatusCode)
	}
	if submit.Score < 0 || submit.Score > 100 || submit.Interpretation == "" {
		t.Fatalf("unexpected submit result: %+v", submit)
	}
	if len(submit.Recommendations) == 0 {
		t.Fatalf("no recommendations returned")
	}

	var list struct {
		Assessments []struct {
			ID    string `json:"id"`
			Score int    `json:"score"`
		} `json:"assessments"`
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/assessments", token, nil, &list)
	if resp.StatusCode != http.StatusOK || len(list.Assessments) != 1 {
		t.Fatalf("list failed: status=%d n=%d", resp.StatusCode, len(list.Assessments))
	}

	var detail struct {
		Assessment struct {
			ID string `json:"id"`
		} `json:"assessment"`
		Answers []struct {
			QuestionID string `json:"question_id"`
		} `json:"answers"`
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/assessments/"+submit.AssessmentID, token, nil, &detail)
	if resp.StatusCode != http.StatusOK || detail.Assessment.ID != submit.AssessmentID {
		t.Fatalf("detail failed: status=%d %+v", resp.StatusCode, detail)
	}
	if len(detail.Answers) != len(answers) {
		t.Fatalf("detail answers = %d, want %d", len(detail.Answers), len(answers))
	}

	var latest struct {
		Domains []struct {
			Domain   string `json:"domain"`
			Assessed bool   `json:"assessed"`
		} `json:"domains"`
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/assessments/latest", token, nil, &latest)
	if resp.StatusCode != http.StatusOK || len(latest.Domains) != 3 {
		t.Fatalf("latest failed: status=%d %+v", resp.StatusCode, latest)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/export?format=score", token, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("export content type = %q", ct)
	}
}

func TestSubmitRequiresAuth(t *testing.T) {
	srv := newTestServer(t)
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/assessments", "", map[string]any{"domain": "mental"}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated submit status = %d, want 401", resp.StatusCode)
	}
}

func TestUnknownDomainRejected(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/assessments", token, map[string]any{"domain": "hormonal"}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown domain status = %d, want 400", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/assessments/questions?domain=hormonal", "", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown domain questions status = %d, want 400", resp.StatusCode)
	}
}

func TestJournalAndGoalsEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	var entry struct {
		ID string `json:"id"`
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/journal", token, map[string]string{
		"title": "First entry",
		"body":  "slept well, walked at lunch",
		"mood":  "steady",
	}, &entry)
	if resp.StatusCode != http.StatusOK || entry.ID == "" {
		t.Fatalf("journal create failed: status=%d id=%q", resp.StatusCode, entry.ID)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/journal/"+entry.ID, token, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("journal delete status = %d", resp.StatusCode)
	}

	var goal struct {
		ID string `json:"id"`
	}
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/goals", token, map[string]string{
		"title": "Walk every morning",
	}, &goal)
	if resp.StatusCode != http.StatusOK || goal.ID == "" {
		t.Fatalf("goal create failed: status=%d id=%q", resp.StatusCode, goal.ID)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/goals/"+goal.ID+"/checkin", token, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checkin status = %d", resp.StatusCode)
	}

	var streak struct {
		Streak int `json:"streak"`
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/goals/"+goal.ID+"/streak", token, nil, &streak)
	if resp.StatusCode != http.StatusOK || streak.Streak != 1 {
		t.Fatalf("streak = %d (status %d), want 1", streak.Streak, resp.StatusCode)
	}
}
