// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"siteforge/internal/imaging"
	"siteforge/internal/models"
	"siteforge/internal/service"
)

// maxUploadSize is the maximum allowed media upload size (50 MB).
const maxUploadSize = 50 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
	"video/mp4":       true,
	"audio/mpeg":      true,
}

// Media groups the media registry's HTTP handlers.
type Media struct {
	svc *service.MediaService
}

// NewMedia creates a new Media handler group.
func NewMedia(svc *service.MediaService) *Media {
	return &Media{svc: svc}
}

// Upload accepts a multipart file upload with optional metadata fields
// (name, website_id, alt_text, folder). The content type is sniffed from
// the bytes, never trusted from the client. Thumbnails are generated for
// raster images.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if len(data) > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds 50 MB")
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "file is empty")
		return
	}

	contentType := http.DetectContentType(data)
	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, "file type not allowed")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	var websiteID *uuid.UUID
	if v := r.FormValue("website_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid website_id")
			return
		}
		websiteID = &id
	}

	var altText, folder *string
	if v := r.FormValue("alt_text"); v != "" {
		altText = &v
	}
	if v := r.FormValue("folder"); v != "" {
		folder = &v
	}
	if msg := validateMediaFields(name, altText, folder); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// A thumbnail failure never fails the upload.
	var thumbnail []byte
	if imaging.Thumbnailable(contentType) {
		thumbnail, err = imaging.Thumbnail(bytes.NewReader(data), imaging.DefaultMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "filename", header.Filename, "error", err)
			thumbnail = nil
		}
	}

	asset, err := h.svc.Upload(r.Context(), currentUserID(r), service.UploadInput{
		Name:             name,
		OriginalFilename: header.Filename,
		Data:             data,
		MimeType:         contentType,
		Thumbnail:        thumbnail,
		WebsiteID:        websiteID,
		AltText:          altText,
		Folder:           folder,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// List returns the caller's assets with optional AND-combined filters:
// website_id, folder, and mime prefix (e.g. "image/").
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var websiteID *uuid.UUID
	if v := q.Get("website_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid website_id")
			return
		}
		websiteID = &id
	}

	var folder *string
	if q.Has("folder") {
		v := q.Get("folder")
		folder = &v
	}

	items, err := h.svc.List(r.Context(), currentUserID(r), websiteID, folder, q.Get("mime"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"media": items})
}

// Get returns a single owned asset with a fresh presigned URL.
func (h *Media) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "mediaID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := h.svc.Get(r.Context(), id, currentUserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// UpdateMetadata applies a partial metadata update; the stored file is
// untouched.
func (h *Media) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "mediaID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Name    *string            `json:"name"`
		AltText *string            `json:"alt_text"`
		Tags    *models.StringList `json:"tags"`
		Folder  *string            `json:"folder"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	if msg := validateMediaFields(name, req.AltText, req.Folder); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	asset, err := h.svc.UpdateMetadata(r.Context(), id, currentUserID(r), &models.MediaPatch{
		Name:    req.Name,
		AltText: req.AltText,
		Tags:    req.Tags,
		Folder:  req.Folder,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// ReassignFolder bulk-moves owned assets to a target folder. A null
// folder means uncategorized. All-or-nothing across the batch.
func (h *Media) ReassignFolder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs    []uuid.UUID `json:"ids"`
		Folder *string     `json:"folder"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids is required")
		return
	}

	items, err := h.svc.ReassignFolder(r.Context(), currentUserID(r), req.IDs, req.Folder)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"media": items})
}

// Delete removes an owned asset's blob and row.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "mediaID")
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
