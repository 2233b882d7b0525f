// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"errors"

	"github.com/google/uuid"

	"siteforge/internal/models"
	"siteforge/internal/store"
)

// PageService owns page lifecycle and the content structure invariants:
// slug uniqueness within a website, home page protection, and sort
// ordering.
type PageService struct {
	websites *store.WebsiteStore
	pages    *store.PageStore
}

// NewPageService wires a PageService.
func NewPageService(websites *store.WebsiteStore, pages *store.PageStore) *PageService {
	return &PageService{websites: websites, pages: pages}
}

// ownedWebsite resolves website ownership for operations scoped to a
// website rather than a single page.
func (s *PageService) ownedWebsite(websiteID, userID uuid.UUID) (*models.Website, error) {
	w, err := s.websites.FindByIDForUser(websiteID, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// Create adds a page to an owned website. The slug must be unused within
// the website; sort order is assigned after the current last page.
func (s *PageService) Create(userID, websiteID uuid.UUID, title, slug string, metaDescription *string) (*models.Page, error) {
	if _, err := s.ownedWebsite(websiteID, userID); err != nil {
		return nil, err
	}

	p, err := s.pages.Create(&models.Page{
		WebsiteID:        websiteID,
		Title:            title,
		Slug:             slug,
		MetaDescription:  metaDescription,
		ContentStructure: models.EmptyContentStructure(),
		Styles:           models.JSONMap{},
	})
	if errors.Is(err, store.ErrDuplicateSlug) {
		return nil, ErrDuplicateSlug
	}
	return p, err
}

// Get returns an owned page.
func (s *PageService) Get(pageID, userID uuid.UUID) (*models.Page, error) {
	p, err := s.pages.FindByIDForUser(pageID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns the pages of an owned website in navigation order.
func (s *PageService) List(userID, websiteID uuid.UUID) ([]models.Page, error) {
	if _, err := s.ownedWebsite(websiteID, userID); err != nil {
		return nil, err
	}
	return s.pages.ListForWebsite(websiteID)
}

// UpdateContent replaces the whole content structure atomically. The
// structure's internals are opaque here; only the mapping shape is
// required of the caller.
func (s *PageService) UpdateContent(pageID, userID uuid.UUID, structure models.JSONMap) (*models.Page, error) {
	p, err := s.pages.UpdateContent(pageID, userID, structure)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// UpdateStyles replaces the page-level style map atomically.
func (s *PageService) UpdateStyles(pageID, userID uuid.UUID, styles models.JSONMap) (*models.Page, error) {
	p, err := s.pages.UpdateStyles(pageID, userID, styles)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// UpdateMetadata applies a partial metadata update. A slug change
// re-checks uniqueness within the website, excluding the page itself.
func (s *PageService) UpdateMetadata(pageID, userID uuid.UUID, patch *models.PagePatch) (*models.Page, error) {
	p, err := s.pages.UpdateMetadata(pageID, userID, patch)
	if errors.Is(err, store.ErrDuplicateSlug) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Publish flips the published flag.
func (s *PageService) Publish(pageID, userID uuid.UUID, published bool) (*models.Page, error) {
	p, err := s.pages.SetPublished(pageID, userID, published)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete removes an owned page. The home page is protected for the
// website's lifetime.
func (s *PageService) Delete(pageID, userID uuid.UUID) error {
	p, err := s.pages.FindByIDForUser(pageID, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if p.IsHomePage {
		return ErrCannotDeleteHomePage
	}

	deleted, err := s.pages.Delete(pageID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Reorder bulk-applies sort orders to an owned website's pages. Any
// supplied page ID outside the website fails the whole batch; nothing
// is applied. Returns the pages in their new order.
func (s *PageService) Reorder(userID, websiteID uuid.UUID, orders []models.PageOrder) ([]models.Page, error) {
	if _, err := s.ownedWebsite(websiteID, userID); err != nil {
		return nil, err
	}

	pages, err := s.pages.Reorder(websiteID, orders)
	if errors.Is(err, store.ErrPartialOwnership) {
		return nil, ErrPartialAccessDenied
	}
	return pages, err
}
