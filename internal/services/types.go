package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lunara-health/lunara/internal/assessment"
)

// User is an account holder. PII is limited to email and display name.
type User struct {
	ID        string
	Email     string
	Name      string
	PassHash  []byte
	CreatedAt time.Time
}

// Assessment is one completed (possibly partial) self-assessment.
type Assessment struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Domain      assessment.Domain `json:"domain"`
	Score       int               `json:"score"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// Answer is one stored response within an assessment. Value is nil when the
// submitted value was missing or non-numeric; Raw preserves the submitted
// payload verbatim.
type Answer struct {
	AssessmentID string `json:"assessment_id"`
	QuestionID   string `json:"question_id"`
	Value        *int   `json:"value"`
	Raw          string `json:"raw,omitempty"`
}

// JournalEntry is a dated free-text reflection with an optional mood tag.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Goal is a self-set wellness goal; daily habit check-ins attach to it.
type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HabitCheckin marks one day of progress on a goal. Day is YYYY-MM-DD.
type HabitCheckin struct {
	GoalID string `json:"goal_id"`
	Day    string `json:"day"`
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
