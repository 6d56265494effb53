package services

import (
	"testing"
	"time"
)

type journalStubStore struct {
	entries map[string]*JournalEntry
}

func newJournalStubStore() *journalStubStore {
	return &journalStubStore{entries: map[string]*JournalEntry{}}
}

func (s *journalStubStore) AddJournalEntry(e *JournalEntry) error {
	copy := *e
	s.entries[e.ID] = &copy
	return nil
}

func (s *journalStubStore) GetJournalEntry(id string) (*JournalEntry, error) {
	if e, ok := s.entries[id]; ok {
		copy := *e
		return &copy, nil
	}
	return nil, nil
}

func (s *journalStubStore) ListJournalEntriesByUser(userID string) ([]*JournalEntry, error) {
	out := []*JournalEntry{}
	for _, e := range s.entries {
		if e.UserID == userID {
			copy := *e
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *journalStubStore) UpdateJournalEntry(e *JournalEntry) (bool, error) {
	if _, ok := s.entries[e.ID]; !ok {
		return false, nil
	}
	copy := *e
	s.entries[e.ID] = &copy
	return true, nil
}

func (s *journalStubStore) DeleteJournalEntry(id string) (bool, error) {
	if _, ok := s.entries[id]; !ok {
		return false, nil
	}
	delete(s.entries, id)
	return true, nil
}

func TestJournalCRUD(t *testing.T) {
	store := newJournalStubStore()
	svc := NewJournalService(store)
	svc.now = func() time.Time { return time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC) }
	svc.idGen = func() string { return "j0001" }

	entry, err := svc.Create("u1", JournalEntryInput{Title: "  Morning pages ", Body: "slept better", Mood: "hopeful"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if entry.Title != "Morning pages" || entry.Mood != "hopeful" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	if _, err := svc.Create("u1", JournalEntryInput{Title: "   "}); err == nil {
		t.Fatalf("expected validation error for blank title")
	}

	entries, err := svc.List("u1")
	if err != nil || len(entries) != 1 {
		t.Fatalf("List = (%v, %v), want 1 entry", entries, err)
	}

	updated, err := svc.Update("u1", "j0001", JournalEntryInput{Title: "Evening pages", Body: "long day"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "Evening pages" || updated.Mood != "" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.Get("u2", "j0001"); err == nil {
		t.Fatalf("expected forbidden for other user")
	}
	if err := svc.Delete("u2", "j0001"); err == nil {
		t.Fatalf("expected forbidden delete for other user")
	}
	if err := svc.Delete("u1", "j0001"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get("u1", "j0001"); err == nil {
		t.Fatalf("expected not found after delete")
	}
}
