// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"siteforge/internal/models"
	"siteforge/internal/service"
)

// Pages groups the page aggregate's HTTP handlers. Collection routes are
// nested under a website; item routes address pages directly.
type Pages struct {
	svc *service.PageService
}

// NewPages creates a new Pages handler group.
func NewPages(svc *service.PageService) *Pages {
	return &Pages{svc: svc}
}

// List returns an owned website's pages in navigation order.
func (h *Pages) List(w http.ResponseWriter, r *http.Request) {
	websiteID, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.List(currentUserID(r), websiteID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": items})
}

// Create adds a page to an owned website.
func (h *Pages) Create(w http.ResponseWriter, r *http.Request) {
	websiteID, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Title           string  `json:"title"`
		Slug            string  `json:"slug"`
		MetaDescription *string `json:"meta_description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validatePageFields(req.Title, req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	page, err := h.svc.Create(currentUserID(r), websiteID, req.Title, req.Slug, req.MetaDescription)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

// Reorder bulk-applies sort orders to an owned website's pages.
// All-or-nothing: one foreign page ID fails the whole batch.
func (h *Pages) Reorder(w http.ResponseWriter, r *http.Request) {
	websiteID, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Orders []models.PageOrder `json:"orders"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Orders) == 0 {
		writeError(w, http.StatusBadRequest, "orders is required")
		return
	}

	pages, err := h.svc.Reorder(currentUserID(r), websiteID, req.Orders)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

// Get returns a single owned page including its content structure.
func (h *Pages) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "pageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.svc.Get(id, currentUserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateContent replaces the page's whole content structure atomically.
func (h *Pages) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "pageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		ContentStructure models.JSONMap `json:"content_structure"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ContentStructure == nil {
		writeError(w, http.StatusBadRequest, "content_structure is required")
		return
	}

	page, err := h.svc.UpdateContent(id, currentUserID(r), req.ContentStructure)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateStyles replaces the page-level style map atomically.
func (h *Pages) UpdateStyles(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "pageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Styles models.JSONMap `json:"styles"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Styles == nil {
		writeError(w, http.StatusBadRequest, "styles is required")
		return
	}

	page, err := h.svc.UpdateStyles(id, currentUserID(r), req.Styles)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateMetadata applies a partial metadata update. A slug change
// re-checks uniqueness within the website.
func (h *Pages) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "pageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Title           *string `json:"title"`
		Slug            *string `json:"slug"`
		MetaDescription *string `json:"meta_description"`
		MetaKeywords    *string `json:"meta_keywords"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validatePagePatch(req.Title, req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	page, err := h.svc.UpdateMetadata(id, currentUserID(r), &models.PagePatch{
		Title:           req.Title,
		Slug:            req.Slug,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Publish marks a page published.
func (h *Pages) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

// Unpublish reverts a page to draft.
func (h *Pages) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *Pages) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, err := pathUUID(r, "pageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.svc.Publish(id, currentUserID(r), published)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Delete removes an owned page. The home page is refused.
func (h *Pages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "pageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(id, currentUserID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
