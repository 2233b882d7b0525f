package service

import (
	"errors"
	"testing"

	"siteforge/internal/models"
)

func TestPageServiceDuplicateSlugWithinWebsite(t *testing.T) {
	db := testDB(t)
	svc := newTestServices(db)
	u := testUser(t, db)

	w1, _, _ := svc.websites.Create(u.ID, "Site One", nil)
	w2, _, _ := svc.websites.Create(u.ID, "Site Two", nil)

	if _, err := svc.pages.Create(u.ID, w1.ID, "About", "/about", nil); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.pages.Create(u.ID, w1.ID, "About 2", "/about", nil); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("same website: got %v, want ErrDuplicateSlug", err)
	}
	if _, err := svc.pages.Create(u.ID, w1.ID, "Other", "/other", nil); err != nil {
		t.Errorf("different slug: %v", err)
	}
	if _, err := svc.pages.Create(u.ID, w2.ID, "About", "/about", nil); err != nil {
		t.Errorf("same slug, different website: %v", err)
	}
}

func TestPageServiceCreateOnForeignWebsite(t *testing.T) {
	db := testDB(t)
	svc := newTestServices(db)
	owner := testUser(t, db)
	stranger := testUser(t, db)

	w, _, _ := svc.websites.Create(owner.ID, "Mine", nil)

	if _, err := svc.pages.Create(stranger.ID, w.ID, "Injected", "/injected", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestPageServiceDeleteHomePageRefused(t *testing.T) {
	db := testDB(t)
	svc := newTestServices(db)
	u := testUser(t, db)

	w, home, _ := svc.websites.Create(u.ID, "Protected", nil)

	if err := svc.pages.Delete(home.ID, u.ID); !errors.Is(err, ErrCannotDeleteHomePage) {
		t.Errorf("home delete: got %v, want ErrCannotDeleteHomePage", err)
	}

	about, err := svc.pages.Create(u.ID, w.ID, "About", "/about", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.pages.Delete(about.ID, u.ID); err != nil {
		t.Errorf("regular delete: %v", err)
	}

	pages, _ := svc.pages.List(u.ID, w.ID)
	for _, p := range pages {
		if p.ID == about.ID {
			t.Error("deleted page still listed")
		}
	}
}

func TestPageServiceReorderProperty(t *testing.T) {
	db := testDB(t)
	svc := newTestServices(db)
	u := testUser(t, db)

	w, home, _ := svc.websites.Create(u.ID, "Ordered", nil)
	a := home
	b, _ := svc.pages.Create(u.ID, w.ID, "B", "/b", nil)
	c, _ := svc.pages.Create(u.ID, w.ID, "C", "/c", nil)

	// [(A,3),(B,1),(C,2)] yields listing [B, C, A].
	pages, err := svc.pages.Reorder(u.ID, w.ID, []models.PageOrder{
		{PageID: a.ID, SortOrder: 3},
		{PageID: b.ID, SortOrder: 1},
		{PageID: c.ID, SortOrder: 2},
	})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if pages[0].ID != b.ID || pages[1].ID != c.ID || pages[2].ID != a.ID {
		t.Errorf("order: got %s, %s, %s", pages[0].Title, pages[1].Title, pages[2].Title)
	}
}

func TestPageServiceReorderForeignPageFailsWholeBatch(t *testing.T) {
	db := testDB(t)
	svc := newTestServices(db)
	u := testUser(t, db)

	w, home, _ := svc.websites.Create(u.ID, "Target", nil)
	_, foreignHome, _ := svc.websites.Create(u.ID, "Other", nil)

	_, err := svc.pages.Reorder(u.ID, w.ID, []models.PageOrder{
		{PageID: home.ID, SortOrder: 2},
		{PageID: foreignHome.ID, SortOrder: 1},
	})
	if !errors.Is(err, ErrPartialAccessDenied) {
		t.Fatalf("got %v, want ErrPartialAccessDenied", err)
	}

	// The foreign page's sort order is untouched.
	reloaded, _ := svc.pages.Get(foreignHome.ID, u.ID)
	if reloaded.SortOrder != foreignHome.SortOrder {
		t.Errorf("foreign page moved: got %d, want %d", reloaded.SortOrder, foreignHome.SortOrder)
	}
}

func TestPageServiceContentRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := newTestServices(db)
	u := testUser(t, db)

	_, home, _ := svc.websites.Create(u.ID, "Structured", nil)

	structure := models.JSONMap{
		models.ContentStructureKey: []any{
			map[string]any{"component_id": "hero-classic", "props": map[string]any{"title": "Welcome"}},
			map[string]any{"component_id": "text-block", "props": map[string]any{}},
		},
	}
	updated, err := svc.pages.UpdateContent(home.ID, u.ID, structure)
	if err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	comps, _ := updated.ContentStructure[models.ContentStructureKey].([]any)
	if len(comps) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(comps))
	}

	got, err := svc.pages.Get(home.ID, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	comps, _ = got.ContentStructure[models.ContentStructureKey].([]any)
	if len(comps) != 2 {
		t.Errorf("round trip lost placements: %d", len(comps))
	}
}
