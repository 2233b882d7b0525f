package store

import (
	"testing"

	"github.com/google/uuid"

	"siteforge/internal/models"
)

func TestWebsiteStoreCreateWithHomePage(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	w, home := testWebsite(t, db, u.ID)

	if w.ID == uuid.Nil {
		t.Error("expected non-nil website UUID")
	}
	if home.WebsiteID != w.ID {
		t.Errorf("home page website_id: got %v, want %v", home.WebsiteID, w.ID)
	}
	if !home.IsHomePage {
		t.Error("expected is_home_page on the seeded page")
	}
	if !home.IsPublished {
		t.Error("expected home page published by default")
	}
	if home.Slug != "/" {
		t.Errorf("home slug: got %q, want %q", home.Slug, "/")
	}
	if home.SortOrder != 1 {
		t.Errorf("home sort_order: got %d, want 1", home.SortOrder)
	}
}

func TestWebsiteStoreOwnershipGuard(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	stranger := testUser(t, db)

	w, _ := testWebsite(t, db, owner.ID)

	found, err := NewWebsiteStore(db).FindByIDForUser(w.ID, owner.ID)
	if err != nil {
		t.Fatalf("FindByIDForUser: %v", err)
	}
	if found == nil {
		t.Fatal("owner should see their website")
	}

	// A foreign website and a missing website look the same.
	found, err = NewWebsiteStore(db).FindByIDForUser(w.ID, stranger.ID)
	if err != nil {
		t.Fatalf("FindByIDForUser (stranger): %v", err)
	}
	if found != nil {
		t.Error("stranger must not see the website")
	}
	found, _ = NewWebsiteStore(db).FindByIDForUser(uuid.New(), owner.ID)
	if found != nil {
		t.Error("expected nil for random UUID")
	}
}

func TestWebsiteStoreUpdatePatch(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	w, _ := testWebsite(t, db, u.ID)
	s := NewWebsiteStore(db)

	name := "Renamed"
	theme := models.JSONMap{"primary_color": "#ff0000", "font_family": "Lato"}
	updated, err := s.Update(w.ID, u.ID, &models.WebsitePatch{Name: &name, ThemeConfig: &theme})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated website")
	}
	if updated.Name != "Renamed" {
		t.Errorf("name: got %q, want %q", updated.Name, "Renamed")
	}
	if updated.ThemeConfig["primary_color"] != "#ff0000" {
		t.Errorf("theme: got %v", updated.ThemeConfig)
	}
	// Untouched fields survive the patch.
	if updated.Description != nil && w.Description == nil {
		t.Error("description changed without being patched")
	}

	// Foreign update hits nothing.
	stranger := testUser(t, db)
	other := "hijacked"
	updated, err = s.Update(w.ID, stranger.ID, &models.WebsitePatch{Name: &other})
	if err != nil {
		t.Fatalf("Update (stranger): %v", err)
	}
	if updated != nil {
		t.Error("stranger update should return nil")
	}
}

func TestWebsiteStorePublishToggle(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	w, _ := testWebsite(t, db, u.ID)
	s := NewWebsiteStore(db)

	pub, err := s.SetPublished(w.ID, u.ID, true)
	if err != nil {
		t.Fatalf("SetPublished: %v", err)
	}
	if !pub.IsPublished {
		t.Error("expected published")
	}

	// Idempotent repeat.
	pub, err = s.SetPublished(w.ID, u.ID, true)
	if err != nil {
		t.Fatalf("SetPublished repeat: %v", err)
	}
	if !pub.IsPublished {
		t.Error("expected still published")
	}

	unpub, err := s.SetPublished(w.ID, u.ID, false)
	if err != nil {
		t.Fatalf("SetPublished false: %v", err)
	}
	if unpub.IsPublished {
		t.Error("expected unpublished")
	}
}

func TestWebsiteStoreDeleteCascade(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	w, _ := testWebsite(t, db, u.ID)

	// Add a second page so the cascade has more than the home page.
	_, err := NewPageStore(db).Create(&models.Page{
		WebsiteID:        w.ID,
		Title:            "About",
		Slug:             "/about",
		ContentStructure: models.EmptyContentStructure(),
		Styles:           models.JSONMap{},
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	deleted, err := NewWebsiteStore(db).DeleteCascade(w.ID, u.ID)
	if err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report success")
	}

	var pageCount int
	db.QueryRow(`SELECT COUNT(*) FROM pages WHERE website_id = $1`, w.ID).Scan(&pageCount)
	if pageCount != 0 {
		t.Errorf("expected 0 pages after cascade, got %d", pageCount)
	}

	// Second delete is a no-op.
	deleted, err = NewWebsiteStore(db).DeleteCascade(w.ID, u.ID)
	if err != nil {
		t.Fatalf("DeleteCascade repeat: %v", err)
	}
	if deleted {
		t.Error("expected false for already deleted website")
	}
}

func TestWebsiteStoreDeleteCascadeForeign(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	stranger := testUser(t, db)
	w, _ := testWebsite(t, db, owner.ID)

	deleted, err := NewWebsiteStore(db).DeleteCascade(w.ID, stranger.ID)
	if err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}
	if deleted {
		t.Error("stranger must not delete the website")
	}

	// Pages survive the foreign attempt.
	var pageCount int
	db.QueryRow(`SELECT COUNT(*) FROM pages WHERE website_id = $1`, w.ID).Scan(&pageCount)
	if pageCount != 1 {
		t.Errorf("expected home page intact, got %d pages", pageCount)
	}
}
