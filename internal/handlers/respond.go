// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON API handler groups: auth, websites,
// pages, components, and media. Handlers decode requests, call the
// service layer, and translate service errors to HTTP status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"siteforge/internal/middleware"
	"siteforge/internal/service"
)

// maxJSONBody caps JSON request bodies. Content structures are the
// largest legitimate payloads.
const maxJSONBody = 2 << 20

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the service error taxonomy to HTTP statuses.
// Unrecognized errors are logged and become an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrDuplicateSlug):
		writeError(w, http.StatusConflict, "slug already in use")
	case errors.Is(err, service.ErrInvalidCode):
		writeError(w, http.StatusUnprocessableEntity, "invalid component code")
	case errors.Is(err, service.ErrCannotDeleteHomePage):
		writeError(w, http.StatusConflict, "the home page cannot be deleted")
	case errors.Is(err, service.ErrPartialAccessDenied):
		writeError(w, http.StatusForbidden, "one or more items are not accessible")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a size-capped JSON body into dst, rejecting unknown
// fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// currentUserID returns the authenticated user's ID, or uuid.Nil when no
// session is loaded. Routes behind RequireAuth always have one.
func currentUserID(r *http.Request) uuid.UUID {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		return sess.UserID
	}
	return uuid.Nil
}

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
