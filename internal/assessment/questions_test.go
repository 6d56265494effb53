package assessment

import (
	"errors"
	"strings"
	"testing"
)

// Ids containing these substrings are the negatively phrased instruments.
// The Reversed flags in the bank replaced this naming rule; keep them in sync.
var reverseIDMarkers = []string{"phq9", "gad7", "hot_flashes", "joint_pain", "memory_recall", "word_finding"}

func TestReversedFlagsMatchNamingConvention(t *testing.T) {
	for _, d := range Domains() {
		questions, err := QuestionsFor(d)
		if err != nil {
			t.Fatalf("QuestionsFor(%s): %v", d, err)
		}
		for _, q := range questions {
			marked := false
			for _, m := range reverseIDMarkers {
				if strings.Contains(q.ID, m) {
					marked = true
					break
				}
			}
			if q.Reversed != marked {
				t.Errorf("%s/%s: Reversed=%v but naming convention says %v", d, q.ID, q.Reversed, marked)
			}
		}
	}
}

func TestQuestionBanksWellFormed(t *testing.T) {
	for _, d := range Domains() {
		questions, err := QuestionsFor(d)
		if err != nil {
			t.Fatalf("QuestionsFor(%s): %v", d, err)
		}
		if len(questions) == 0 {
			t.Fatalf("domain %s has no questions", d)
		}
		seen := map[string]bool{}
		for _, q := range questions {
			if q.ID == "" || q.Prompt == "" {
				t.Errorf("%s: question with empty id or prompt: %+v", d, q)
			}
			if seen[q.ID] {
				t.Errorf("%s: duplicate question id %q", d, q.ID)
			}
			seen[q.ID] = true
			if n := len(q.Options); n < 4 || n > 5 {
				t.Errorf("%s/%s: %d options, want 4 or 5", d, q.ID, n)
			}
			if q.Weight < 0.8 || q.Weight > 1.5 {
				t.Errorf("%s/%s: weight %v outside [0.8, 1.5]", d, q.ID, q.Weight)
			}
		}
	}
}

func TestQuestionsForUnknownDomain(t *testing.T) {
	if _, err := QuestionsFor(Domain("hormonal")); !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
}

func TestParseDomain(t *testing.T) {
	for _, d := range Domains() {
		got, err := ParseDomain(string(d))
		if err != nil || got != d {
			t.Fatalf("ParseDomain(%s) = (%v, %v)", d, got, err)
		}
	}
	if _, err := ParseDomain("spiritual"); !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
}
