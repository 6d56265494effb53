package api

import (
	"strings"
	"sync"

	"github.com/lunara-health/lunara/internal/services"
)

// memoryStore keeps everything in process memory. It backs unit tests and
// dev runs without a database file.
type memoryStore struct {
	mu           sync.RWMutex
	usersByEmail map[string]*services.User
	assessments  map[string]*services.Assessment
	answers      map[string][]*services.Answer
	journal      map[string]*services.JournalEntry
	goals        map[string]*services.Goal
	checkins     map[string]map[string]bool
}

func NewMemoryStore() Store { return newMemoryStore() }

func newMemoryStore() *memoryStore {
	return &memoryStore{
		usersByEmail: map[string]*services.User{},
		assessments:  map[string]*services.Assessment{},
		answers:      map[string][]*services.Answer{},
		journal:      map[string]*services.JournalEntry{},
		goals:        map[string]*services.Goal{},
		checkins:     map[string]map[string]bool{},
	}
}

func (s *memoryStore) AddUser(u *services.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *u
	s.usersByEmail[strings.ToLower(u.Email)] = &copy
	return nil
}

func (s *memoryStore) FindUserByEmail(email string) (*services.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.usersByEmail[strings.ToLower(email)]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *memoryStore) AddAssessment(a *services.Assessment, answers []*services.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *a
	s.assessments[a.ID] = &copy
	stored := make([]*services.Answer, 0, len(answers))
	for _, ans := range answers {
		c := *ans
		stored = append(stored, &c)
	}
	s.answers[a.ID] = stored
	return nil
}

func (s *memoryStore) GetAssessment(id string) (*services.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.assessments[id]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, nil
}

func (s *memoryStore) ListAssessmentsByUser(userID string) ([]*services.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*services.Assessment{}
	for _, a := range s.assessments {
		if a.UserID == userID {
			copy := *a
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAnswersByAssessment(assessmentID string) ([]*services.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*services.Answer, 0, len(s.answers[assessmentID]))
	for _, a := range s.answers[assessmentID] {
		copy := *a
		out = append(out, &copy)
	}
	return out, nil
}

func (s *memoryStore) AddJournalEntry(e *services.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *e
	s.journal[e.ID] = &copy
	return nil
}

func (s *memoryStore) GetJournalEntry(id string) (*services.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.journal[id]; ok {
		copy := *e
		return &copy, nil
	}
	return nil, nil
}

func (s *memoryStore) ListJournalEntriesByUser(userID string) ([]*services.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*services.JournalEntry{}
	for _, e := range s.journal {
		if e.UserID == userID {
			copy := *e
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *memoryStore) UpdateJournalEntry(e *services.JournalEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.journal[e.ID]; !ok {
		return false, nil
	}
	copy := *e
	s.journal[e.ID] = &copy
	return true, nil
}

func (s *memoryStore) DeleteJournalEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.journal[id]; !ok {
		return false, nil
	}
	delete(s.journal, id)
	return true, nil
}

func (s *memoryStore) AddGoal(g *services.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *g
	s.goals[g.ID] = &copy
	return nil
}

func (s *memoryStore) GetGoal(id string) (*services.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.goals[id]; ok {
		copy := *g
		return &copy, nil
	}
	return nil, nil
}

func (s *memoryStore) ListGoalsByUser(userID string) ([]*services.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*services.Goal{}
	for _, g := range s.goals {
		if g.UserID == userID {
			copy := *g
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *memoryStore) UpdateGoal(g *services.Goal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[g.ID]; !ok {
		return false, nil
	}
	copy := *g
	s.goals[g.ID] = &copy
	return true, nil
}

func (s *memoryStore) AddHabitCheckin(c *services.HabitCheckin) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkins[c.GoalID] == nil {
		s.checkins[c.GoalID] = map[string]bool{}
	}
	if s.checkins[c.GoalID][c.Day] {
		return false, nil
	}
	s.checkins[c.GoalID][c.Day] = true
	return true, nil
}

func (s *memoryStore) ListHabitCheckins(goalID string) ([]*services.HabitCheckin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*services.HabitCheckin{}
	for day := range s.checkins[goalID] {
		out = append(out, &services.HabitCheckin{GoalID: goalID, Day: day})
	}
	return out, nil
}
