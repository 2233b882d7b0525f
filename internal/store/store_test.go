// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"siteforge/internal/database"
	"siteforge/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
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

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway user and registers a cleanup that removes
// the user together with everything hanging off it.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	email := "test-" + uuid.NewString()[:8] + "@example.com"
	u, err := NewUserStore(db).Create(email, "s3cret-pass", "Test User")
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

// testWebsite creates a website with its home page for the given owner.
func testWebsite(t *testing.T, db *sql.DB, userID uuid.UUID) (*models.Website, *models.Page) {
	t.Helper()

	w := &models.Website{
		UserID:      userID,
		Name:        "Test Site " + uuid.NewString()[:8],
		ThemeConfig: models.JSONMap{"primary_color": "#3b82f6"},
		SEOConfig:   models.JSONMap{},
	}
	home := &models.Page{
		Title:            "Home",
		Slug:             "/",
		ContentStructure: models.EmptyContentStructure(),
		Styles:           models.JSONMap{},
	}
	created, homePage, err := NewWebsiteStore(db).CreateWithHomePage(w, home)
	if err != nil {
		t.Fatalf("create test website: %v", err)
	}
	return created, homePage
}
