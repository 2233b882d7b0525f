// service_test.go provides shared helpers for service integration
// tests. Tests are skipped if PostgreSQL is not available. Services run
// with a nil storage client; blob-dependent paths are exercised only
// through their ownership and error semantics.
package service

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"siteforge/internal/database"
	"siteforge/internal/models"
	"siteforge/internal/store"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "siteforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "siteforge")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	email := "svc-" + uuid.NewString()[:8] + "@example.com"
	u, err := store.NewUserStore(db).Create(email, "s3cret-pass", "Service Test")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM media_assets WHERE user_id = $1`, u.ID)
		db.Exec(`DELETE FROM components WHERE user_id = $1`, u.ID)
		db.Exec(`DELETE FROM pages WHERE website_id IN (SELECT id FROM websites WHERE user_id = $1)`, u.ID)
		db.Exec(`DELETE FROM websites WHERE user_id = $1`, u.ID)
		db.Exec(`DELETE FROM users WHERE id = $1`, u.ID)
	})
	return u
}

// testServices builds the full service set over one DB connection with
// storage disabled.
type testServices struct {
	websites   *WebsiteService
	pages      *PageService
	components *ComponentService
	media      *MediaService
}

func newTestServices(db *sql.DB) *testServices {
	websiteStore := store.NewWebsiteStore(db)
	pageStore := store.NewPageStore(db)
	return &testServices{
		websites:   NewWebsiteService(websiteStore, pageStore, nil, 0),
		pages:      NewPageService(websiteStore, pageStore),
		components: NewComponentService(store.NewComponentStore(db), nil, 0),
		media:      NewMediaService(store.NewMediaStore(db), websiteStore, nil, 0),
	}
}
