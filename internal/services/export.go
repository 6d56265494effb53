package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// LongRow is one answer row of the long-format export.
type LongRow struct {
	AssessmentID string
	Domain       string
	QuestionID   string
	Value        *int
	SubmittedAt  string // RFC3339
}

// ScoreRow is one assessment row of the score-format export.
type ScoreRow struct {
	AssessmentID string
	Domain       string
	Score        int
	SubmittedAt  string
}

// ExportLongCSV renders per-answer rows. Missing values export as empty
// cells, not zeros.
func ExportLongCSV(rows []LongRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"assessment_id", "domain", "question_id", "value", "submitted_at"})
	for _, r := range rows {
		value := ""
		if r.Value != nil {
			value = strconv.Itoa(*r.Value)
		}
		if err := w.Write([]string{r.AssessmentID, r.Domain, r.QuestionID, value, r.SubmittedAt}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportScoreCSV renders one row per assessment with its final score.
func ExportScoreCSV(rows []ScoreRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"assessment_id", "domain", "score", "submitted_at"})
	for _, r := range rows {
		if err := w.Write([]string{r.AssessmentID, r.Domain, strconv.Itoa(r.Score), r.SubmittedAt}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
