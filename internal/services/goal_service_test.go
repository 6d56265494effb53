package services

import (
	"testing"
	"time"
)

type goalStubStore struct {
	goals    map[string]*Goal
	checkins map[string]map[string]bool
}

func newGoalStubStore() *goalStubStore {
	return &goalStubStore{goals: map[string]*Goal{}, checkins: map[string]map[string]bool{}}
}

func (s *goalStubStore) AddGoal(g *Goal) error {
	copy := *g
	s.goals[g.ID] = &copy
	return nil
}

func (s *goalStubStore) GetGoal(id string) (*Goal, error) {
	if g, ok := s.goals[id]; ok {
		copy := *g
		return &copy, nil
	}
	return nil, nil
}

func (s *goalStubStore) ListGoalsByUser(userID string) ([]*Goal, error) {
	out := []*Goal{}
	for _, g := range s.goals {
		if g.UserID == userID {
			copy := *g
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *goalStubStore) UpdateGoal(g *Goal) (bool, error) {
	if _, ok := s.goals[g.ID]; !ok {
		return false, nil
	}
	copy := *g
	s.goals[g.ID] = &copy
	return true, nil
}

func (s *goalStubStore) AddHabitCheckin(c *HabitCheckin) (bool, error) {
	if s.checkins[c.GoalID] == nil {
		s.checkins[c.GoalID] = map[string]bool{}
	}
	if s.checkins[c.GoalID][c.Day] {
		return false, nil
	}
	s.checkins[c.GoalID][c.Day] = true
	return true, nil
}

func (s *goalStubStore) ListHabitCheckins(goalID string) ([]*HabitCheckin, error) {
	out := []*HabitCheckin{}
	for day := range s.checkins[goalID] {
		out = append(out, &HabitCheckin{GoalID: goalID, Day: day})
	}
	return out, nil
}

func TestGoalLifecycle(t *testing.T) {
	store := newGoalStubStore()
	svc := NewGoalService(store)
	svc.now = func() time.Time { return time.Date(2026, 4, 10, 7, 0, 0, 0, time.UTC) }
	svc.idGen = func() string { return "g0001" }

	goal, err := svc.Create("u1", GoalInput{Title: "Walk every morning", Notes: "20 minutes minimum"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if goal.CompletedAt != nil {
		t.Fatalf("new goal should not be completed")
	}
	if _, err := svc.Create("u1", GoalInput{}); err == nil {
		t.Fatalf("expected validation error for empty title")
	}

	done, err := svc.Complete("u1", "g0001")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatalf("goal not marked completed")
	}
	// completing twice keeps the first timestamp
	again, err := svc.Complete("u1", "g0001")
	if err != nil {
		t.Fatalf("second Complete returned error: %v", err)
	}
	if !again.CompletedAt.Equal(*done.CompletedAt) {
		t.Fatalf("completion timestamp changed on repeat")
	}

	if _, err := svc.Complete("u2", "g0001"); err == nil {
		t.Fatalf("expected forbidden for other user")
	}
	if _, err := svc.Complete("u1", "missing"); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestHabitCheckinsAndStreak(t *testing.T) {
	store := newGoalStubStore()
	svc := NewGoalService(store)
	svc.idGen = func() string { return "g0002" }
	today := time.Date(2026, 4, 10, 22, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	if _, err := svc.Create("u1", GoalInput{Title: "Strength twice a week"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// three consecutive days ending today, plus an older gap day
	for _, day := range []string{"2026-04-05", "2026-04-08", "2026-04-09", "2026-04-10"} {
		if _, err := store.AddHabitCheckin(&HabitCheckin{GoalID: "g0002", Day: day}); err != nil {
			t.Fatalf("seed checkin: %v", err)
		}
	}

	streak, err := svc.Streak("u1", "g0002")
	if err != nil {
		t.Fatalf("Streak returned error: %v", err)
	}
	if streak != 3 {
		t.Fatalf("streak = %d, want 3", streak)
	}

	// duplicate same-day check-in stays idempotent
	if _, err := svc.CheckIn("u1", "g0002"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if _, err := svc.CheckIn("u1", "g0002"); err != nil {
		t.Fatalf("repeat CheckIn: %v", err)
	}
	if streak2, _ := svc.Streak("u1", "g0002"); streak2 != 3 {
		t.Fatalf("streak after duplicate checkin = %d, want 3", streak2)
	}
}

func TestStreakFallsBackToYesterday(t *testing.T) {
	store := newGoalStubStore()
	svc := NewGoalService(store)
	svc.idGen = func() string { return "g0003" }
	svc.now = func() time.Time { return time.Date(2026, 4, 10, 6, 0, 0, 0, time.UTC) }

	if _, err := svc.Create("u1", GoalInput{Title: "Read before bed"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, day := range []string{"2026-04-08", "2026-04-09"} {
		if _, err := store.AddHabitCheckin(&HabitCheckin{GoalID: "g0003", Day: day}); err != nil {
			t.Fatalf("seed checkin: %v", err)
		}
	}
	streak, err := svc.Streak("u1", "g0003")
	if err != nil {
		t.Fatalf("Streak returned error: %v", err)
	}
	if streak != 2 {
		t.Fatalf("streak = %d, want 2 (counting back from yesterday)", streak)
	}
}
