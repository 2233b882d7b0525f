// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/models"
	"siteforge/internal/service"
)

// maxPreviewSize caps component preview image uploads (5 MB).
const maxPreviewSize = 5 << 20

// previewTypes are the MIME types accepted for preview images.
var previewTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Components groups the component HTTP handlers: the built-in catalog,
// public components, and the caller's custom components.
type Components struct {
	svc *service.ComponentService
}

// NewComponents creates a new Components handler group.
func NewComponents(svc *service.ComponentService) *Components {
	return &Components{svc: svc}
}

// BuiltIns returns the built-in catalog. No authentication required.
func (h *Components) BuiltIns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"components": h.svc.ListBuiltIns()})
}

// Public returns all public custom components, optionally filtered by
// category. No authentication required.
func (h *Components) Public(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPublic(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"components": items})
}

// List returns the caller's custom components, optionally filtered by
// category.
func (h *Components) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListForOwner(r.Context(), currentUserID(r), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"components": items})
}

// Create persists a new custom component.
func (h *Components) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string             `json:"name"`
		Code        string             `json:"code"`
		Description *string            `json:"description"`
		Category    string             `json:"category"`
		Styles      *string            `json:"styles"`
		PropsSchema models.PropsSchema `json:"props_schema"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateComponentFields(req.Name, req.Code); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	component, err := h.svc.CreateCustom(currentUserID(r), service.CustomComponentInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Category:    req.Category,
		Styles:      req.Styles,
		PropsSchema: req.PropsSchema,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, component)
}

// Get resolves a component ID: built-in slugs first, then custom UUIDs
// under the visibility rules. Works without a session, in which case
// only built-ins resolve.
func (h *Components) Get(w http.ResponseWriter, r *http.Request) {
	component, err := h.svc.Get(r.Context(), currentUserID(r), chi.URLParam(r, "componentID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, component)
}

// Validate runs the code heuristics without persisting anything. Always
// responds 200; problems are reported in the body.
func (h *Components) Validate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, service.ValidateCode(req.Code))
}

// Update applies a partial update to an owned custom component and bumps
// its version.
func (h *Components) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string             `json:"name"`
		Description *string             `json:"description"`
		Code        *string             `json:"code"`
		Styles      *string             `json:"styles"`
		PropsSchema *models.PropsSchema `json:"props_schema"`
		IsPublic    *bool               `json:"is_public"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	component, err := h.svc.Update(r.Context(), currentUserID(r), chi.URLParam(r, "componentID"), &models.ComponentPatch{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		Styles:      req.Styles,
		PropsSchema: req.PropsSchema,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, component)
}

// UploadPreview accepts a multipart preview image for an owned component.
func (h *Components) UploadPreview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPreviewSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPreviewSize+1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if len(data) > maxPreviewSize {
		writeError(w, http.StatusRequestEntityTooLarge, "preview exceeds 5 MB")
		return
	}

	contentType := http.DetectContentType(data)
	if !previewTypes[contentType] {
		writeError(w, http.StatusBadRequest, "unsupported preview type")
		return
	}

	component, err := h.svc.UploadPreview(r.Context(), currentUserID(r), chi.URLParam(r, "componentID"), data, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, component)
}

// Delete removes an owned custom component. Built-ins cannot be deleted.
func (h *Components) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), currentUserID(r), chi.URLParam(r, "componentID")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
