package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lunara-health/lunara/internal/api"
	"github.com/lunara-health/lunara/internal/db"
	"github.com/lunara-health/lunara/internal/middleware"
	"github.com/lunara-health/lunara/internal/utils"
)

func main() {
	addr := utils.SafeEnv("LUNARA_ADDR", ":8080")
	commit := os.Getenv("LUNARA_COMMIT")
	buildTime := os.Getenv("LUNARA_BUILD_TIME")

	store, err := openStore()
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	mux := http.NewServeMux()
	api.NewRouter(store).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Lunara API",
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Serve the built frontend when LUNARA_STATIC_DIR points at it.
	if staticDir := os.Getenv("LUNARA_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.SecureHeaders(middleware.CORS(middleware.NoStore(middleware.WithAuth(mux))))

	log.Printf("Lunara server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// openStore opens the sqlite-backed store, or an in-memory store when
// LUNARA_DB is set to "memory" (useful for local runs and smoke tests).
func openStore() (api.Store, error) {
	path := utils.SafeEnv("LUNARA_DB", "lunara.db")
	if path == "memory" {
		log.Printf("using in-memory store; data will not survive restarts")
		return api.NewMemoryStore(), nil
	}
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(sqlDB, os.Getenv("LUNARA_MIGRATIONS_DIR")); err != nil {
		return nil, err
	}
	return db.NewSQLiteStore(sqlDB)
}
