// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"

	"siteforge/internal/models"
	"siteforge/internal/service"
)

// maxFaviconSize caps favicon uploads (1 MB).
const maxFaviconSize = 1 << 20

// faviconTypes are the MIME types accepted for favicons.
var faviconTypes = map[string]bool{
	"image/png":                true,
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
	"image/svg+xml":            true,
}

// Websites groups the website aggregate's HTTP handlers.
type Websites struct {
	svc *service.WebsiteService
}

// NewWebsites creates a new Websites handler group.
func NewWebsites(svc *service.WebsiteService) *Websites {
	return &Websites{svc: svc}
}

// List returns the caller's websites, most recently updated first.
func (h *Websites) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"websites": items})
}

// Create makes a new website together with its home page.
func (h *Websites) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateWebsiteName(req.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	website, home, err := h.svc.Create(currentUserID(r), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"website":   website,
		"home_page": home,
	})
}

// Get returns a single owned website.
func (h *Websites) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	website, err := h.svc.Get(r.Context(), id, currentUserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, website)
}

// Update applies a partial update. Absent fields are untouched; fields
// present with empty values overwrite.
func (h *Websites) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Name        *string         `json:"name"`
		Description *string         `json:"description"`
		Domain      *string         `json:"domain"`
		ThemeConfig *models.JSONMap `json:"theme_config"`
		SEOConfig   *models.JSONMap `json:"seo_config"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name != nil {
		if msg := validateWebsiteName(*req.Name); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	website, err := h.svc.Update(r.Context(), id, currentUserID(r), &models.WebsitePatch{
		Name:        req.Name,
		Description: req.Description,
		Domain:      req.Domain,
		ThemeConfig: req.ThemeConfig,
		SEOConfig:   req.SEOConfig,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, website)
}

// UploadFavicon accepts a multipart favicon upload for an owned website.
func (h *Websites) UploadFavicon(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxFaviconSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxFaviconSize+1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if len(data) > maxFaviconSize {
		writeError(w, http.StatusRequestEntityTooLarge, "favicon exceeds 1 MB")
		return
	}

	contentType := http.DetectContentType(data)
	if !faviconTypes[contentType] {
		writeError(w, http.StatusBadRequest, "unsupported favicon type")
		return
	}

	website, err := h.svc.UploadFavicon(r.Context(), id, currentUserID(r), data, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, website)
}

// Publish marks a website published.
func (h *Websites) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

// Unpublish reverts a website to draft.
func (h *Websites) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *Websites) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	website, err := h.svc.Publish(r.Context(), id, currentUserID(r), published)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, website)
}

// Delete removes an owned website and everything under it.
func (h *Websites) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "websiteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id, currentUserID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
