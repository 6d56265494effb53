package services

import (
	"sort"
	"strings"
	"time"
)

type JournalStore interface {
	AddJournalEntry(e *JournalEntry) error
	GetJournalEntry(id string) (*JournalEntry, error)
	ListJournalEntriesByUser(userID string) ([]*JournalEntry, error)
	UpdateJournalEntry(e *JournalEntry) (bool, error)
	DeleteJournalEntry(id string) (bool, error)
}

type JournalService struct {
	store JournalStore
	now   func() time.Time
	idGen func() string
}

type JournalEntryInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Mood  string `json:"mood,omitempty"`
}

func NewJournalService(store JournalStore) *JournalService {
	return &JournalService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return "j" + shortID(11) },
	}
}

func (s *JournalService) Create(userID string, in JournalEntryInput) (*JournalEntry, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewInvalidError("title required")
	}
	now := s.now()
	entry := &JournalEntry{
		ID:        s.idGen(),
		UserID:    userID,
		Title:     strings.TrimSpace(in.Title),
		Body:      in.Body,
		Mood:      strings.TrimSpace(in.Mood),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.AddJournalEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) List(userID string) ([]*JournalEntry, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	entries, err := s.store.ListJournalEntriesByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

func (s *JournalService) Get(userID, id string) (*JournalEntry, error) {
	entry, err := s.ownedEntry(userID, id)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) Update(userID, id string, in JournalEntryInput) (*JournalEntry, error) {
	entry, err := s.ownedEntry(userID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewInvalidError("title required")
	}
	entry.Title = strings.TrimSpace(in.Title)
	entry.Body = in.Body
	entry.Mood = strings.TrimSpace(in.Mood)
	entry.UpdatedAt = s.now()
	ok, err := s.store.UpdateJournalEntry(entry)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("entry not found")
	}
	return entry, nil
}

func (s *JournalService) Delete(userID, id string) error {
	if _, err := s.ownedEntry(userID, id); err != nil {
		return err
	}
	ok, err := s.store.DeleteJournalEntry(id)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("entry not found")
	}
	return nil
}

func (s *JournalService) ownedEntry(userID, id string) (*JournalEntry, error) {
	if userID == "" {
		return nil, NewUnauthorizedError("login required")
	}
	entry, err := s.store.GetJournalEntry(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, NewNotFoundError("entry not found")
	}
	if entry.UserID != userID {
		return nil, NewForbiddenError("forbidden")
	}
	return entry, nil
}
