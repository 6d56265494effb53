// Package assessment implements the health self-assessment scoring engine:
// a static weighted question bank for three wellness domains, a pure scorer
// producing a normalized 0-100 score, and an interpreter mapping scores to
// labels and coaching recommendations.
package assessment

import (
	"errors"
	"fmt"
)

// Domain identifies one of the fixed assessment categories.
type Domain string

const (
	DomainMental    Domain = "mental"
	DomainPhysical  Domain = "physical"
	DomainCognitive Domain = "cognitive"
)

// Domains lists all supported domains in presentation order.
func Domains() []Domain {
	return []Domain{DomainMental, DomainPhysical, DomainCognitive}
}

// ErrUnknownDomain is returned when a caller asks for a domain outside the
// fixed set. An unknown domain is a programming error, not missing user data.
var ErrUnknownDomain = errors.New("unknown assessment domain")

// ParseDomain validates a raw domain tag.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainMental, DomainPhysical, DomainCognitive:
		return Domain(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

// Question is one questionnaire item. Questions are static configuration:
// defined once, never mutated at runtime.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"` // 0-based option index is the raw answer value
	Weight  float64  `json:"weight"`
	// Reversed marks negatively phrased items where a higher raw value means
	// a worse outcome; the scorer inverts these before aggregation.
	Reversed bool `json:"reversed"`
}

// Response is one user answer. Value is the 0-based index of the chosen
// option; nil means the answer was missing or non-numeric and scores as 0.
type Response struct {
	QuestionID string `json:"question_id"`
	Value      *int   `json:"value"`
}

// DefaultMaxValue is the normalization denominator assumed when a question
// carries no option list (a 5-point scale).
const DefaultMaxValue = 4

// QuestionsFor returns the ordered question list for a domain. List order is
// presentation order only; scoring matches by question ID and is
// order-independent.
func QuestionsFor(d Domain) ([]Question, error) {
	switch d {
	case DomainMental:
		return mentalQuestions, nil
	case DomainPhysical:
		return physicalQuestions, nil
	case DomainCognitive:
		return cognitiveQuestions, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
}
