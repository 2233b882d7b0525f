// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"siteforge/internal/models"
	"siteforge/internal/storage"
	"siteforge/internal/store"
)

// WebsiteService owns the website aggregate: creation with its home
// page, partial updates, publishing, and the cascading delete.
type WebsiteService struct {
	websites   *store.WebsiteStore
	pages      *store.PageStore
	storage    *storage.Client
	presignTTL time.Duration
}

// NewWebsiteService wires a WebsiteService. The storage client may be
// nil, in which case favicon upload is unavailable and no URLs are
// resolved.
func NewWebsiteService(websites *store.WebsiteStore, pages *store.PageStore, st *storage.Client, presignTTL time.Duration) *WebsiteService {
	return &WebsiteService{websites: websites, pages: pages, storage: st, presignTTL: presignTTL}
}

// presignPath resolves a storage key to a time-limited URL. Returns nil
// when storage is not configured or presigning fails (logged, not fatal).
func presignPath(ctx context.Context, st *storage.Client, ttl time.Duration, path *string) *string {
	if st == nil || path == nil || *path == "" {
		return nil
	}
	url, err := st.PresignedURL(ctx, *path, ttl)
	if err != nil {
		slog.Warn("presign failed", "path", *path, "error", err)
		return nil
	}
	return &url
}

func (s *WebsiteService) resolve(ctx context.Context, w *models.Website) *models.Website {
	if w != nil {
		w.FaviconURL = presignPath(ctx, s.storage, s.presignTTL, w.FaviconPath)
	}
	return w
}

// Create makes a new website with default theme and SEO configuration
// and its home page ("/", published, empty structure) in one
// transaction. A website never exists without a home page.
func (s *WebsiteService) Create(userID uuid.UUID, name string, description *string) (*models.Website, *models.Page, error) {
	w := &models.Website{
		UserID:      userID,
		Name:        name,
		Description: description,
		ThemeConfig: models.JSONMap{
			"primary_color": "#3b82f6",
			"font_family":   "Inter",
		},
		SEOConfig: models.JSONMap{
			"site_title":       name,
			"site_description": "",
		},
	}
	home := &models.Page{
		Title:            "Home",
		Slug:             "/",
		ContentStructure: models.EmptyContentStructure(),
		Styles:           models.JSONMap{},
	}

	created, homePage, err := s.websites.CreateWithHomePage(w, home)
	if err != nil {
		return nil, nil, fmt.Errorf("create website: %w", err)
	}
	return created, homePage, nil
}

// Get returns an owned website with its favicon URL resolved.
func (s *WebsiteService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Website, error) {
	w, err := s.websites.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, w), nil
}

// List returns the caller's websites, most recently updated first.
func (s *WebsiteService) List(ctx context.Context, userID uuid.UUID) ([]models.Website, error) {
	items, err := s.websites.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.resolve(ctx, &items[i])
	}
	return items, nil
}

// Update applies a partial update. Omitted fields are untouched;
// explicitly empty values overwrite.
func (s *WebsiteService) Update(ctx context.Context, id, userID uuid.UUID, patch *models.WebsitePatch) (*models.Website, error) {
	w, err := s.websites.Update(id, userID, patch)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, w), nil
}

// UploadFavicon stores the favicon blob and records its path. Blob
// first, row second.
func (s *WebsiteService) UploadFavicon(ctx context.Context, id, userID uuid.UUID, data []byte, contentType string) (*models.Website, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("object storage not configured")
	}

	// Ownership before any blob write.
	existing, err := s.websites.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	key := fmt.Sprintf("users/%s/websites/%s/favicon-%s", userID, id, uuid.NewString()[:8])
	if err := s.storage.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("upload favicon: %w", err)
	}

	w, err := s.websites.SetFavicon(id, userID, key)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}

	// Replaced favicon blob is cleaned up best-effort.
	if existing.FaviconPath != nil && *existing.FaviconPath != key {
		if err := s.storage.Delete(ctx, *existing.FaviconPath); err != nil {
			slog.Warn("old favicon blob not deleted", "path", *existing.FaviconPath, "error", err)
		}
	}
	return s.resolve(ctx, w), nil
}

// Publish flips the published flag. Idempotent.
func (s *WebsiteService) Publish(ctx context.Context, id, userID uuid.UUID, published bool) (*models.Website, error) {
	w, err := s.websites.SetPublished(id, userID, published)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, w), nil
}

// Delete removes an owned website and all of its pages. The favicon
// blob is removed best-effort after the rows are gone.
func (s *WebsiteService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.websites.FindByIDForUser(id, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	deleted, err := s.websites.DeleteCascade(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if s.storage != nil && existing.FaviconPath != nil {
		if err := s.storage.Delete(ctx, *existing.FaviconPath); err != nil {
			slog.Warn("favicon blob not deleted", "path", *existing.FaviconPath, "error", err)
		}
	}
	return nil
}
