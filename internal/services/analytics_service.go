package services

import (
	"sort"

	"github.com/lunara-health/lunara/internal/assessment"
)

type AnalyticsStore interface {
	ListAssessmentsByUser(userID string) ([]*Assessment, error)
	ListAnswersByAssessment(assessmentID string) ([]*Answer, error)
}

type AnalyticsService struct {
	store AnalyticsStore
}

// TrendPoint is one assessment score in chronological order.
type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// QuestionStats aggregates answers to one bank question across a user's
// assessment history.
type QuestionStats struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Reversed   bool   `json:"reversed"`
	Histogram  []int  `json:"histogram"` // indexed by option position
	Total      int    `json:"total"`
}

// DomainSummary is the analytics rollup for one domain.
type DomainSummary struct {
	Domain      assessment.Domain `json:"domain"`
	Count       int               `json:"count"`
	LatestScore int               `json:"latest_score"`
	MeanScore   float64           `json:"mean_score"`
	Questions   []QuestionStats   `json:"questions"`
	Alpha       float64           `json:"alpha"`
	N           int               `json:"n"`
	Trend       []TrendPoint      `json:"trend"`
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Trend returns the user's scores for a domain, oldest first.
func (s *AnalyticsService) Trend(userID string, domain assessment.Domain) ([]TrendPoint, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	if _, err := assessment.QuestionsFor(domain); err != nil {
		return nil, NewInvalidError(err.Error())
	}
	records, err := s.domainAssessments(userID, domain)
	if err != nil {
		return nil, err
	}
	out := make([]TrendPoint, 0, len(records))
	for _, r := range records {
		out = append(out, TrendPoint{Date: r.SubmittedAt.UTC().Format("2006-01-02"), Score: r.Score})
	}
	return out, nil
}

// Summary aggregates a user's history for one domain: score trend, answer
// histograms per question, and Cronbach's alpha over assessments that
// answered every bank question.
func (s *AnalyticsService) Summary(userID string, domain assessment.Domain) (*DomainSummary, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	questions, err := assessment.QuestionsFor(domain)
	if err != nil {
		return nil, NewInvalidError(err.Error())
	}
	records, err := s.domainAssessments(userID, domain)
	if err != nil {
		return nil, err
	}

	stats := make([]QuestionStats, len(questions))
	statIndex := make(map[string]int, len(questions))
	for i, q := range questions {
		stats[i] = QuestionStats{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Reversed:   q.Reversed,
			Histogram:  make([]int, len(q.Options)),
		}
		statIndex[q.ID] = i
	}

	summary := &DomainSummary{Domain: domain, Count: len(records), Questions: stats}
	var matrix [][]float64
	var scoreSum int
	for _, r := range records {
		scoreSum += r.Score
		summary.LatestScore = r.Score // records are oldest first; last wins
		summary.Trend = append(summary.Trend, TrendPoint{Date: r.SubmittedAt.UTC().Format("2006-01-02"), Score: r.Score})

		answers, err := s.store.ListAnswersByAssessment(r.ID)
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(questions))
		answered := 0
		for _, a := range answers {
			idx, ok := statIndex[a.QuestionID]
			if !ok || a.Value == nil {
				continue
			}
			v := *a.Value
			if v >= 0 && v < len(stats[idx].Histogram) {
				stats[idx].Histogram[v]++
				stats[idx].Total++
			}
			if v < 0 {
				v = 0
			}
			if max := len(stats[idx].Histogram) - 1; max >= 0 && v > max {
				v = max
			}
			row[idx] = float64(v)
			answered++
		}
		if answered == len(questions) {
			matrix = append(matrix, row)
		}
	}
	if len(records) > 0 {
		summary.MeanScore = float64(scoreSum) / float64(len(records))
	}
	summary.Alpha = CronbachAlpha(matrix)
	summary.N = len(matrix)
	return summary, nil
}

func (s *AnalyticsService) domainAssessments(userID string, domain assessment.Domain) ([]*Assessment, error) {
	records, err := s.store.ListAssessmentsByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*Assessment, 0, len(records))
	for _, r := range records {
		if r.Domain == domain {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}
