// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"siteforge/internal/models"
)

func TestWebsiteCreateReturnsHomePage(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	r := newTestAPI(db).router(u)

	var resp struct {
		Website  models.Website `json:"website"`
		HomePage models.Page    `json:"home_page"`
	}
	code := doJSON(t, r, http.MethodPost, "/api/websites", map[string]any{
		"name": "Portfolio",
	}, &resp)
	if code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201", code)
	}
	if resp.Website.Name != "Portfolio" {
		t.Errorf("name: got %q", resp.Website.Name)
	}
	if !resp.HomePage.IsHomePage || resp.HomePage.Slug != "/" {
		t.Errorf("home page: %+v", resp.HomePage)
	}
	if resp.Website.ThemeConfig["primary_color"] != "#3b82f6" {
		t.Errorf("default theme missing: %v", resp.Website.ThemeConfig)
	}

	var got models.Website
	code = doJSON(t, r, http.MethodGet, "/api/websites/"+resp.Website.ID.String(), nil, &got)
	if code != http.StatusOK {
		t.Fatalf("get: got %d, want 200", code)
	}
	if got.ID != resp.Website.ID {
		t.Errorf("get returned wrong website")
	}
}

func TestWebsiteCreateRequiresName(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	r := newTestAPI(db).router(u)

	code := doJSON(t, r, http.MethodPost, "/api/websites", map[string]any{
		"name": "   ",
	}, nil)
	if code != http.StatusBadRequest {
		t.Errorf("blank name: got %d, want 400", code)
	}
}

func TestWebsiteForeignLooksMissing(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	stranger := testUser(t, db)
	api := newTestAPI(db)

	var resp struct {
		Website models.Website `json:"website"`
	}
	if code := doJSON(t, api.router(owner), http.MethodPost, "/api/websites", map[string]any{
		"name": "Private",
	}, &resp); code != http.StatusCreated {
		t.Fatalf("create: got %d", code)
	}

	// Same 404 for a foreign website as for a missing one.
	code := doJSON(t, api.router(stranger), http.MethodGet, "/api/websites/"+resp.Website.ID.String(), nil, nil)
	if code != http.StatusNotFound {
		t.Errorf("foreign get: got %d, want 404", code)
	}
	code = doJSON(t, api.router(stranger), http.MethodDelete, "/api/websites/"+resp.Website.ID.String(), nil, nil)
	if code != http.StatusNotFound {
		t.Errorf("foreign delete: got %d, want 404", code)
	}
}

func TestWebsitePublishAndDelete(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	r := newTestAPI(db).router(u)

	var resp struct {
		Website models.Website `json:"website"`
	}
	if code := doJSON(t, r, http.MethodPost, "/api/websites", map[string]any{
		"name": "Launch",
	}, &resp); code != http.StatusCreated {
		t.Fatalf("create: got %d", code)
	}
	id := resp.Website.ID.String()

	var published models.Website
	if code := doJSON(t, r, http.MethodPost, "/api/websites/"+id+"/publish", nil, &published); code != http.StatusOK {
		t.Fatalf("publish: got %d", code)
	}
	if !published.IsPublished {
		t.Error("publish did not set the flag")
	}

	if code := doJSON(t, r, http.MethodDelete, "/api/websites/"+id, nil, nil); code != http.StatusOK {
		t.Fatalf("delete: got %d", code)
	}
	if code := doJSON(t, r, http.MethodGet, "/api/websites/"+id, nil, nil); code != http.StatusNotFound {
		t.Errorf("get after delete: got %d, want 404", code)
	}
}

func TestWebsiteUpdateDistinguishesOmittedFromEmpty(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)
	r := newTestAPI(db).router(u)

	var resp struct {
		Website models.Website `json:"website"`
	}
	if code := doJSON(t, r, http.MethodPost, "/api/websites", map[string]any{
		"name":        "Docs",
		"description": "internal docs",
	}, &resp); code != http.StatusCreated {
		t.Fatalf("create: got %d", code)
	}
	id := resp.Website.ID.String()

	// Omitted description stays put.
	var updated models.Website
	if code := doJSON(t, r, http.MethodPatch, "/api/websites/"+id, map[string]any{
		"name": "Handbook",
	}, &updated); code != http.StatusOK {
		t.Fatalf("patch: got %d", code)
	}
	if updated.Description == nil || *updated.Description != "internal docs" {
		t.Errorf("omitted description changed: %v", updated.Description)
	}

	// Explicit empty string overwrites.
	if code := doJSON(t, r, http.MethodPatch, "/api/websites/"+id, map[string]any{
		"description": "",
	}, &updated); code != http.StatusOK {
		t.Fatalf("patch empty: got %d", code)
	}
	if updated.Description == nil || *updated.Description != "" {
		t.Errorf("explicit empty not applied: %v", updated.Description)
	}
}
