package services

import (
	"sort"
	"strings"
	"time"
)

type GoalStore interface {
	AddGoal(g *Goal) error
	GetGoal(id string) (*Goal, error)
	ListGoalsByUser(userID string) ([]*Goal, error)
	UpdateGoal(g *Goal) (bool, error)
	AddHabitCheckin(c *HabitCheckin) (bool, error)
	ListHabitCheckins(goalID string) ([]*HabitCheckin, error)
}

type GoalService struct {
	store GoalStore
	now   func() time.Time
	idGen func() string
}

type GoalInput struct {
	Title      string     `json:"title"`
	Notes      string     `json:"notes,omitempty"`
	TargetDate *time.Time `json:"target_date,omitempty"`
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return "g" + shortID(11) },
	}
}

func (s *GoalService) Create(userID string, in GoalInput) (*Goal, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewInvalidError("title required")
	}
	goal := &Goal{
		ID:         s.idGen(),
		UserID:     userID,
		Title:      strings.TrimSpace(in.Title),
		Notes:      in.Notes,
		TargetDate: in.TargetDate,
		CreatedAt:  s.now(),
	}
	if err := s.store.AddGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(userID string) ([]*Goal, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	goals, err := s.store.ListGoalsByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.After(goals[j].CreatedAt) })
	return goals, nil
}

func (s *GoalService) Complete(userID, id string) (*Goal, error) {
	goal, err := s.ownedGoal(userID, id)
	if err != nil {
		return nil, err
	}
	if goal.CompletedAt != nil {
		return goal, nil
	}
	now := s.now()
	goal.CompletedAt = &now
	ok, err := s.store.UpdateGoal(goal)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("goal not found")
	}
	return goal, nil
}

// CheckIn records today's habit check-in for a goal. Repeated check-ins on
// the same day are accepted and deduplicated.
func (s *GoalService) CheckIn(userID, id string) (*HabitCheckin, error) {
	goal, err := s.ownedGoal(userID, id)
	if err != nil {
		return nil, err
	}
	checkin := &HabitCheckin{GoalID: goal.ID, Day: s.now().Format("2006-01-02")}
	if _, err := s.store.AddHabitCheckin(checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

// Streak counts consecutive checked-in days ending today, or ending yesterday
// when today has not been checked in yet.
func (s *GoalService) Streak(userID, id string) (int, error) {
	goal, err := s.ownedGoal(userID, id)
	if err != nil {
		return 0, err
	}
	checkins, err := s.store.ListHabitCheckins(goal.ID)
	if err != nil {
		return 0, err
	}
	days := make(map[string]bool, len(checkins))
	for _, c := range checkins {
		days[c.Day] = true
	}
	day := s.now().Truncate(24 * time.Hour)
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

func (s *GoalService) ownedGoal(userID, id string) (*Goal, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	goal, err := s.store.GetGoal(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, NewNotFoundError("goal not found")
	}
	if goal.UserID != userID {
		return nil, NewForbiddenError("forbidden")
	}
	return goal, nil
}
