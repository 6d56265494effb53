package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lunara-health/lunara/internal/api"
	"github.com/lunara-health/lunara/internal/assessment"
	"github.com/lunara-health/lunara/internal/services"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ api.Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) logErr(prefix string, err error) {
	if err != nil {
		log.Printf("sqlite store: %s: %v", prefix, err)
	}
}

func toNullString(v string) sql.NullString {
	if strings.TrimSpace(v) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func toNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func fromNullTime(v sql.NullString) *time.Time {
	if !v.Valid || strings.TrimSpace(v.String) == "" {
		return nil
	}
	t := parseTime(v.String)
	return &t
}

// --- Users ---

func (s *SQLiteStore) AddUser(u *services.User) error {
	_, err := s.db.Exec(`INSERT INTO users (id, email, name, pass_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, strings.ToLower(u.Email), u.Name, u.PassHash, u.CreatedAt.UTC().Format(time.RFC3339Nano))
	s.logErr("AddUser", err)
	return err
}

func (s *SQLiteStore) FindUserByEmail(email string) (*services.User, error) {
	row := s.db.QueryRow(`SELECT id, email, name, pass_hash, created_at FROM users WHERE email = ?`, strings.ToLower(email))
	var u services.User
	var created string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PassHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logErr("FindUserByEmail", err)
		return nil, err
	}
	u.CreatedAt = parseTime(created)
	return &u, nil
}

// --- Assessments ---

func (s *SQLiteStore) AddAssessment(a *services.Assessment, answers []*services.Answer) error {
	tx, err := s.db.Begin()
	if err != nil {
		s.logErr("AddAssessment: begin", err)
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
				s.logErr("AddAssessment: rollback", rerr)
			}
		}
	}()
	_, err = tx.Exec(`INSERT INTO assessments (id, user_id, domain, score, submitted_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.UserID, string(a.Domain), a.Score, a.SubmittedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		s.logErr("AddAssessment: insert", err)
		return err
	}
	for _, ans := range answers {
		_, err = tx.Exec(`INSERT INTO assessment_answers (assessment_id, question_id, value, raw_json) VALUES (?, ?, ?, ?)
      ON CONFLICT(assessment_id, question_id) DO UPDATE SET value = excluded.value, raw_json = excluded.raw_json`,
			ans.AssessmentID, ans.QuestionID, toNullInt(ans.Value), toNullString(ans.Raw))
		if err != nil {
			s.logErr("AddAssessment: insert answer", err)
			return err
		}
	}
	err = tx.Commit()
	s.logErr("AddAssessment: commit", err)
	return err
}

func (s *SQLiteStore) GetAssessment(id string) (*services.Assessment, error) {
	row := s.db.QueryRow(`SELECT id, user_id, domain, score, submitted_at FROM assessments WHERE id = ?`, id)
	a, err := scanAssessment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logErr("GetAssessment", err)
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) ListAssessmentsByUser(userID string) ([]*services.Assessment, error) {
	rows, err := s.db.Query(`SELECT id, user_id, domain, score, submitted_at FROM assessments WHERE user_id = ? ORDER BY submitted_at ASC`, userID)
	if err != nil {
		s.logErr("ListAssessmentsByUser: query", err)
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListAssessmentsByUser: rows.Close", cerr)
		}
	}()
	out := []*services.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows.Scan)
		if err != nil {
			s.logErr("ListAssessmentsByUser: scan", err)
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		s.logErr("ListAssessmentsByUser: rows.Err", err)
		return nil, err
	}
	return out, nil
}

func scanAssessment(scan func(...any) error) (*services.Assessment, error) {
	var a services.Assessment
	var domain, submitted string
	if err := scan(&a.ID, &a.UserID, &domain, &a.Score, &submitted); err != nil {
		return nil, err
	}
	a.Domain = assessment.Domain(domain)
	a.SubmittedAt = parseTime(submitted)
	return &a, nil
}

func (s *SQLiteStore) ListAnswersByAssessment(assessmentID string) ([]*services.Answer, error) {
	rows, err := s.db.Query(`SELECT assessment_id, question_id, value, raw_json FROM assessment_answers WHERE assessment_id = ? ORDER BY question_id ASC`, assessmentID)
	if err != nil {
		s.logErr("ListAnswersByAssessment: query", err)
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListAnswersByAssessment: rows.Close", cerr)
		}
	}()
	out := []*services.Answer{}
	for rows.Next() {
		var a services.Answer
		var value sql.NullInt64
		var raw sql.NullString
		if err := rows.Scan(&a.AssessmentID, &a.QuestionID, &value, &raw); err != nil {
			s.logErr("ListAnswersByAssessment: scan", err)
			return nil, err
		}
		a.Value = fromNullInt(value)
		a.Raw = raw.String
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		s.logErr("ListAnswersByAssessment: rows.Err", err)
		return nil, err
	}
	return out, nil
}

// --- Journal ---

func (s *SQLiteStore) AddJournalEntry(e *services.JournalEntry) error {
	_, err := s.db.Exec(`INSERT INTO journal_entries (id, user_id, title, body, mood, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Title, e.Body, e.Mood, e.CreatedAt.UTC().Format(time.RFC3339Nano), e.UpdatedAt.UTC().Format(time.RFC3339Nano))
	s.logErr("AddJournalEntry", err)
	return err
}

func (s *SQLiteStore) GetJournalEntry(id string) (*services.JournalEntry, error) {
	row := s.db.QueryRow(`SELECT id, user_id, title, body, mood, created_at, updated_at FROM journal_entries WHERE id = ?`, id)
	e, err := scanJournalEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logErr("GetJournalEntry", err)
		return nil, err
	}
	return e, nil
}

func (s *SQLiteStore) ListJournalEntriesByUser(userID string) ([]*services.JournalEntry, error) {
	rows, err := s.db.Query(`SELECT id, user_id, title, body, mood, created_at, updated_at FROM journal_entries WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		s.logErr("ListJournalEntriesByUser: query", err)
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListJournalEntriesByUser: rows.Close", cerr)
		}
	}()
	out := []*services.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows.Scan)
		if err != nil {
			s.logErr("ListJournalEntriesByUser: scan", err)
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		s.logErr("ListJournalEntriesByUser: rows.Err", err)
		return nil, err
	}
	return out, nil
}

func scanJournalEntry(scan func(...any) error) (*services.JournalEntry, error) {
	var e services.JournalEntry
	var created, updated string
	if err := scan(&e.ID, &e.UserID, &e.Title, &e.Body, &e.Mood, &created, &updated); err != nil {
		return nil, err
	}
	e.CreatedAt = parseTime(created)
	e.UpdatedAt = parseTime(updated)
	return &e, nil
}

func (s *SQLiteStore) UpdateJournalEntry(e *services.JournalEntry) (bool, error) {
	res, err := s.db.Exec(`UPDATE journal_entries SET title = ?, body = ?, mood = ?, updated_at = ? WHERE id = ?`,
		e.Title, e.Body, e.Mood, e.UpdatedAt.UTC().Format(time.RFC3339Nano), e.ID)
	if err != nil {
		s.logErr("UpdateJournalEntry", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.logErr("UpdateJournalEntry: rows affected", err)
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) DeleteJournalEntry(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		s.logErr("DeleteJournalEntry", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.logErr("DeleteJournalEntry: rows affected", err)
		return false, err
	}
	return n > 0, nil
}

// --- Goals ---

func (s *SQLiteStore) AddGoal(g *services.Goal) error {
	_, err := s.db.Exec(`INSERT INTO goals (id, user_id, title, notes, target_date, created_at, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Title, g.Notes, toNullTime(g.TargetDate), g.CreatedAt.UTC().Format(time.RFC3339Nano), toNullTime(g.CompletedAt))
	s.logErr("AddGoal", err)
	return err
}

func (s *SQLiteStore) GetGoal(id string) (*services.Goal, error) {
	row := s.db.QueryRow(`SELECT id, user_id, title, notes, target_date, created_at, completed_at FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logErr("GetGoal", err)
		return nil, err
	}
	return g, nil
}

func (s *SQLiteStore) ListGoalsByUser(userID string) ([]*services.Goal, error) {
	rows, err := s.db.Query(`SELECT id, user_id, title, notes, target_date, created_at, completed_at FROM goals WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		s.logErr("ListGoalsByUser: query", err)
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListGoalsByUser: rows.Close", cerr)
		}
	}()
	out := []*services.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			s.logErr("ListGoalsByUser: scan", err)
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		s.logErr("ListGoalsByUser: rows.Err", err)
		return nil, err
	}
	return out, nil
}

func scanGoal(scan func(...any) error) (*services.Goal, error) {
	var g services.Goal
	var created string
	var target, completed sql.NullString
	if err := scan(&g.ID, &g.UserID, &g.Title, &g.Notes, &target, &created, &completed); err != nil {
		return nil, err
	}
	g.TargetDate = fromNullTime(target)
	g.CreatedAt = parseTime(created)
	g.CompletedAt = fromNullTime(completed)
	return &g, nil
}

func (s *SQLiteStore) UpdateGoal(g *services.Goal) (bool, error) {
	res, err := s.db.Exec(`UPDATE goals SET title = ?, notes = ?, target_date = ?, completed_at = ? WHERE id = ?`,
		g.Title, g.Notes, toNullTime(g.TargetDate), toNullTime(g.CompletedAt), g.ID)
	if err != nil {
		s.logErr("UpdateGoal", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.logErr("UpdateGoal: rows affected", err)
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) AddHabitCheckin(c *services.HabitCheckin) (bool, error) {
	res, err := s.db.Exec(`INSERT INTO habit_checkins (goal_id, day) VALUES (?, ?) ON CONFLICT(goal_id, day) DO NOTHING`,
		c.GoalID, c.Day)
	if err != nil {
		s.logErr("AddHabitCheckin", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.logErr("AddHabitCheckin: rows affected", err)
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) ListHabitCheckins(goalID string) ([]*services.HabitCheckin, error) {
	rows, err := s.db.Query(`SELECT goal_id, day FROM habit_checkins WHERE goal_id = ? ORDER BY day ASC`, goalID)
	if err != nil {
		s.logErr("ListHabitCheckins: query", err)
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListHabitCheckins: rows.Close", cerr)
		}
	}()
	out := []*services.HabitCheckin{}
	for rows.Next() {
		var c services.HabitCheckin
		if err := rows.Scan(&c.GoalID, &c.Day); err != nil {
			s.logErr("ListHabitCheckins: scan", err)
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		s.logErr("ListHabitCheckins: rows.Err", err)
		return nil, err
	}
	return out, nil
}
