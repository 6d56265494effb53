package api

import "github.com/lunara-health/lunara/internal/services"

// Store is the union of the narrow persistence interfaces the services own.
// Implementations: memoryStore (tests, dev) and db.SQLiteStore.
type Store interface {
	services.AuthStore
	services.AssessmentStore
	services.JournalStore
	services.GoalStore
}

var _ Store = (*memoryStore)(nil)
