// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
// Sessions are injected straight into the request context, so Valkey is
// not required; handlers run with storage disabled.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"siteforge/internal/database"
	"siteforge/internal/middleware"
	"siteforge/internal/models"
	"siteforge/internal/service"
	"siteforge/internal/session"
	"siteforge/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "siteforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "siteforge")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway user and cleans up everything it owns.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	email := "api-" + uuid.NewString()[:8] + "@example.com"
	u, err := store.NewUserStore(db).Create(email, "s3cret-pass", "API Test")
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

// testAPI bundles the handler groups over one DB connection with storage
// disabled, plus the route table they are served from.
type testAPI struct {
	websites   *Websites
	pages      *Pages
	components *Components
	media      *Media
	mediaStore *store.MediaStore
}

func newTestAPI(db *sql.DB) *testAPI {
	websiteStore := store.NewWebsiteStore(db)
	pageStore := store.NewPageStore(db)
	mediaStore := store.NewMediaStore(db)
	return &testAPI{
		websites:   NewWebsites(service.NewWebsiteService(websiteStore, pageStore, nil, 0)),
		pages:      NewPages(service.NewPageService(websiteStore, pageStore)),
		components: NewComponents(service.NewComponentService(store.NewComponentStore(db), nil, 0)),
		media:      NewMedia(service.NewMediaService(mediaStore, websiteStore, nil, 0)),
		mediaStore: mediaStore,
	}
}

// router mounts the production route shapes with the given user's
// session injected into every request, bypassing Valkey.
func (api *testAPI) router(user *models.User) chi.Router {
	r := chi.NewRouter()
	if user != nil {
		sess := &session.Data{
			UserID:      user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			TwoFADone:   true,
		}
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), middleware.SessionKey, sess)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/components/built-in", api.components.BuiltIns)
		r.Get("/components/public", api.components.Public)
		r.Get("/components/{componentID}", api.components.Get)

		r.Route("/websites", func(r chi.Router) {
			r.Get("/", api.websites.List)
			r.Post("/", api.websites.Create)
			r.Route("/{websiteID}", func(r chi.Router) {
				r.Get("/", api.websites.Get)
				r.Patch("/", api.websites.Update)
				r.Delete("/", api.websites.Delete)
				r.Post("/publish", api.websites.Publish)
				r.Post("/unpublish", api.websites.Unpublish)
				r.Route("/pages", func(r chi.Router) {
					r.Get("/", api.pages.List)
					r.Post("/", api.pages.Create)
					r.Post("/reorder", api.pages.Reorder)
				})
			})
		})

		r.Route("/pages/{pageID}", func(r chi.Router) {
			r.Get("/", api.pages.Get)
			r.Patch("/", api.pages.UpdateMetadata)
			r.Delete("/", api.pages.Delete)
			r.Put("/content", api.pages.UpdateContent)
			r.Put("/styles", api.pages.UpdateStyles)
			r.Post("/publish", api.pages.Publish)
			r.Post("/unpublish", api.pages.Unpublish)
		})

		r.Route("/components", func(r chi.Router) {
			r.Get("/", api.components.List)
			r.Post("/", api.components.Create)
			r.Post("/validate", api.components.Validate)
			r.Route("/{componentID}", func(r chi.Router) {
				r.Patch("/", api.components.Update)
				r.Delete("/", api.components.Delete)
			})
		})

		r.Route("/media", func(r chi.Router) {
			r.Get("/", api.media.List)
			r.Post("/", api.media.Upload)
			r.Post("/reassign-folder", api.media.ReassignFolder)
			r.Route("/{mediaID}", func(r chi.Router) {
				r.Get("/", api.media.Get)
				r.Patch("/", api.media.UpdateMetadata)
				r.Delete("/", api.media.Delete)
			})
		})
	})
	return r
}

// doJSON performs a JSON request against the router and decodes the
// response body into out (when non-nil). Returns the status code.
func doJSON(t *testing.T, r chi.Router, method, path string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if out != nil && rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response (%d): %v: %s", rr.Code, err, rr.Body.String())
		}
	}
	return rr.Code
}
