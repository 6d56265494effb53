package services

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lunara-health/lunara/internal/assessment"
)

// AssessmentStore abstracts persistence for the submission workflow.
type AssessmentStore interface {
	AddAssessment(a *Assessment, answers []*Answer) error
	GetAssessment(id string) (*Assessment, error)
	ListAssessmentsByUser(userID string) ([]*Assessment, error)
	ListAnswersByAssessment(assessmentID string) ([]*Answer, error)
}

// SubmitAnswer mirrors the inbound payload for one answered question. Raw
// carries the value as submitted; quoted numbers are tolerated.
type SubmitAnswer struct {
	QuestionID string          `json:"question_id"`
	Raw        json.RawMessage `json:"value"`
}

// SubmitRequest transports a completed questionnaire into the service layer.
type SubmitRequest struct {
	Domain  string         `json:"domain"`
	Answers []SubmitAnswer `json:"answers"`
}

// SubmitResult collects everything the results screen needs.
type SubmitResult struct {
	AssessmentID    string            `json:"assessment_id"`
	Domain          assessment.Domain `json:"domain"`
	Score           int               `json:"score"`
	Interpretation  string            `json:"interpretation"`
	Recommendations []string          `json:"recommendations"`
	Answered        int               `json:"answered"`
	SubmittedAt     time.Time         `json:"submitted_at"`
}

// DomainStatus is one row of the dashboard summary.
type DomainStatus struct {
	Domain         assessment.Domain `json:"domain"`
	Assessed       bool              `json:"assessed"`
	Score          int               `json:"score,omitempty"`
	Interpretation string            `json:"interpretation,omitempty"`
	SubmittedAt    *time.Time        `json:"submitted_at,omitempty"`
}

// AssessmentDetail is a stored assessment together with its answers and
// display text.
type AssessmentDetail struct {
	Assessment      *Assessment `json:"assessment"`
	Answers         []*Answer   `json:"answers"`
	Interpretation  string      `json:"interpretation"`
	Recommendations []string    `json:"recommendations"`
}

type AssessmentService struct {
	store AssessmentStore
	now   func() time.Time
	idGen func() string
}

func NewAssessmentService(store AssessmentStore) *AssessmentService {
	return &AssessmentService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return "a" + shortID(11) },
	}
}

// Submit scores the answers against the domain's question bank and persists
// the result. Unknown question ids are skipped; malformed values score zero.
// Partial questionnaires are accepted and produce a best-effort score.
func (s *AssessmentService) Submit(userID string, req SubmitRequest) (*SubmitResult, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	domain, err := assessment.ParseDomain(req.Domain)
	if err != nil {
		return nil, NewInvalidError(err.Error())
	}
	questions, err := assessment.QuestionsFor(domain)
	if err != nil {
		return nil, NewInvalidError(err.Error())
	}

	submittedAt := s.now()
	record := &Assessment{ID: s.idGen(), UserID: userID, Domain: domain, SubmittedAt: submittedAt}

	responses := make([]assessment.Response, 0, len(req.Answers))
	answers := make([]*Answer, 0, len(req.Answers))
	for _, ans := range req.Answers {
		if ans.QuestionID == "" {
			continue
		}
		value := coerceValue(ans.Raw)
		responses = append(responses, assessment.Response{QuestionID: ans.QuestionID, Value: value})
		answers = append(answers, &Answer{
			AssessmentID: record.ID,
			QuestionID:   ans.QuestionID,
			Value:        value,
			Raw:          string(ans.Raw),
		})
	}

	record.Score = assessment.CalculateScore(responses, questions)
	if err := s.store.AddAssessment(record, answers); err != nil {
		return nil, err
	}

	return &SubmitResult{
		AssessmentID:    record.ID,
		Domain:          domain,
		Score:           record.Score,
		Interpretation:  assessment.Interpretation(record.Score, domain),
		Recommendations: assessment.Recommendations(record.Score, domain),
		Answered:        len(answers),
		SubmittedAt:     submittedAt,
	}, nil
}

// coerceValue extracts an integer answer from raw JSON. Numbers and quoted
// numbers are accepted; anything else is treated as missing.
func coerceValue(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		v := int(num)
		return &v
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			return &n
		}
	}
	return nil
}

// List returns the user's assessment history, newest first.
func (s *AssessmentService) List(userID string) ([]*Assessment, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	records, err := s.store.ListAssessmentsByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].SubmittedAt.After(records[j].SubmittedAt) })
	return records, nil
}

// Get returns one assessment with its answers. Users can only read their own.
func (s *AssessmentService) Get(userID, id string) (*AssessmentDetail, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	record, err := s.store.GetAssessment(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, NewNotFoundError("assessment not found")
	}
	if record.UserID != userID {
		return nil, NewForbiddenError("forbidden")
	}
	answers, err := s.store.ListAnswersByAssessment(id)
	if err != nil {
		return nil, err
	}
	return &AssessmentDetail{
		Assessment:      record,
		Answers:         answers,
		Interpretation:  assessment.Interpretation(record.Score, record.Domain),
		Recommendations: assessment.Recommendations(record.Score, record.Domain),
	}, nil
}

// LatestByDomain reports the most recent score per domain for the dashboard.
// Domains never assessed are included with Assessed=false.
func (s *AssessmentService) LatestByDomain(userID string) ([]DomainStatus, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	records, err := s.store.ListAssessmentsByUser(userID)
	if err != nil {
		return nil, err
	}
	latest := map[assessment.Domain]*Assessment{}
	for _, r := range records {
		if cur, ok := latest[r.Domain]; !ok || r.SubmittedAt.After(cur.SubmittedAt) {
			latest[r.Domain] = r
		}
	}
	out := make([]DomainStatus, 0, len(assessment.Domains()))
	for _, d := range assessment.Domains() {
		st := DomainStatus{Domain: d}
		if r, ok := latest[d]; ok {
			at := r.SubmittedAt
			st.Assessed = true
			st.Score = r.Score
			st.Interpretation = assessment.Interpretation(r.Score, d)
			st.SubmittedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}
