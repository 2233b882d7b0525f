// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"siteforge/internal/catalog"
	"siteforge/internal/models"
	"siteforge/internal/storage"
	"siteforge/internal/store"
)

// ComponentService merges the immutable built-in catalog with
// user-authored custom components. Built-ins resolve by slug and are
// visible to everyone, authenticated or not; customs resolve by UUID
// under the ownership rules.
type ComponentService struct {
	components *store.ComponentStore
	storage    *storage.Client
	presignTTL time.Duration
}

// NewComponentService wires a ComponentService. The storage client may
// be nil; preview uploads then fail and no URLs are resolved.
func NewComponentService(components *store.ComponentStore, st *storage.Client, presignTTL time.Duration) *ComponentService {
	return &ComponentService{components: components, storage: st, presignTTL: presignTTL}
}

func (s *ComponentService) resolve(ctx context.Context, c *models.Component) *models.Component {
	if c != nil {
		c.PreviewImageURL = presignPath(ctx, s.storage, s.presignTTL, c.PreviewImagePath)
	}
	return c
}

// ListBuiltIns returns the catalog. Callable without authentication.
func (s *ComponentService) ListBuiltIns() []models.Component {
	return catalog.List()
}

// CustomComponentInput carries the fields of a new custom component.
type CustomComponentInput struct {
	Name        string
	Code        string
	Description *string
	Category    string
	Styles      *string
	PropsSchema models.PropsSchema
}

// CreateCustom persists a new custom component. The code must start
// with function, const, or export after trimming; anything else is
// ErrInvalidCode.
func (s *ComponentService) CreateCustom(userID uuid.UUID, in CustomComponentInput) (*models.Component, error) {
	if !hasValidCodePrefix(in.Code) {
		return nil, ErrInvalidCode
	}

	category := in.Category
	if category == "" {
		category = "custom"
	}
	schema := in.PropsSchema
	if schema == nil {
		schema = models.PropsSchema{}
	}

	code := in.Code
	return s.components.Create(&models.Component{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
		Type:        models.ComponentTypeCustom,
		Code:        &code,
		Styles:      in.Styles,
		PropsSchema: schema,
		Version:     "1.0.0",
	})
}

// Get resolves a component ID: the built-in catalog by slug first, then
// the owned-or-public custom lookup. An unauthenticated requester
// (uuid.Nil) may only resolve built-ins.
func (s *ComponentService) Get(ctx context.Context, requesterID uuid.UUID, id string) (*models.Component, error) {
	if builtIn := catalog.Find(id); builtIn != nil {
		return builtIn, nil
	}
	if requesterID == uuid.Nil {
		return nil, ErrNotFound
	}

	// Anything that isn't a catalog slug must be a custom component UUID.
	componentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	c, err := s.components.FindOwnedOrPublic(componentID, requesterID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, c), nil
}

// Update applies a partial update to an owned custom component. The
// version is bumped monotonically at the patch level and updated_at is
// refreshed regardless of which fields changed. Supplying empty code is
// rejected.
func (s *ComponentService) Update(ctx context.Context, userID uuid.UUID, id string, patch *models.ComponentPatch) (*models.Component, error) {
	// Only emptiness is checked here; the prefix rule applies at creation.
	if patch.Code != nil && strings.TrimSpace(*patch.Code) == "" {
		return nil, ErrInvalidCode
	}

	componentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	// The current version seeds the bump; built-ins are not rows and
	// fall out here.
	current, err := s.components.FindOwned(componentID, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	c, err := s.components.Update(componentID, userID, patch, current.BumpedVersion())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, c), nil
}

// UploadPreview stores a preview image blob and records its path on an
// owned component.
func (s *ComponentService) UploadPreview(ctx context.Context, userID uuid.UUID, id string, data []byte, contentType string) (*models.Component, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("object storage not configured")
	}
	componentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	key := fmt.Sprintf("users/%s/components/%s/preview-%s", userID, componentID, uuid.NewString()[:8])
	if err := s.storage.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("upload preview: %w", err)
	}

	c, err := s.components.SetPreviewImage(componentID, userID, key)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, c), nil
}

// ListForOwner returns the caller's custom components, optionally
// filtered by category, preview URLs resolved.
func (s *ComponentService) ListForOwner(ctx context.Context, userID uuid.UUID, category string) ([]models.Component, error) {
	items, err := s.components.ListForOwner(userID, category)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.resolve(ctx, &items[i])
	}
	return items, nil
}

// ListPublic returns all public custom components, optionally filtered
// by category. Callable without authentication.
func (s *ComponentService) ListPublic(ctx context.Context, category string) ([]models.Component, error) {
	items, err := s.components.ListPublic(category)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.resolve(ctx, &items[i])
	}
	return items, nil
}

// Delete removes an owned custom component. Built-ins are not rows and
// resolve to ErrNotFound.
func (s *ComponentService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	componentID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	existing, err := s.components.FindOwned(componentID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	deleted, err := s.components.Delete(componentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if s.storage != nil && existing.PreviewImagePath != nil {
		if err := s.storage.Delete(ctx, *existing.PreviewImagePath); err != nil {
			slog.Warn("preview image blob not deleted", "path", *existing.PreviewImagePath, "error", err)
		}
	}
	return nil
}
