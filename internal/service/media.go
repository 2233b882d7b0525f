// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"siteforge/internal/models"
	"siteforge/internal/slug"
	"siteforge/internal/storage"
	"siteforge/internal/store"
)

// MediaService owns the media registry: blob upload plus metadata row,
// filtered listing, and bulk folder reorganization. Blob writes happen
// before row writes; a row failure after a successful blob write leaks
// the blob and is logged rather than rolled back.
type MediaService struct {
	media      *store.MediaStore
	websites   *store.WebsiteStore
	storage    *storage.Client
	presignTTL time.Duration
}

// NewMediaService wires a MediaService.
func NewMediaService(media *store.MediaStore, websites *store.WebsiteStore, st *storage.Client, presignTTL time.Duration) *MediaService {
	return &MediaService{media: media, websites: websites, storage: st, presignTTL: presignTTL}
}

func (s *MediaService) resolve(ctx context.Context, m *models.MediaAsset) *models.MediaAsset {
	if m == nil {
		return nil
	}
	if url := presignPath(ctx, s.storage, s.presignTTL, &m.FilePath); url != nil {
		m.FileURL = *url
	}
	m.ThumbnailURL = presignPath(ctx, s.storage, s.presignTTL, m.ThumbnailPath)
	return m
}

// UploadInput carries an incoming media file and its metadata.
type UploadInput struct {
	Name             string
	OriginalFilename string
	Data             []byte
	MimeType         string
	// Thumbnail is an optional pre-rendered JPEG thumbnail, stored
	// alongside the original under a derived key.
	Thumbnail []byte
	WebsiteID *uuid.UUID
	AltText   *string
	Folder    *string
	Tags      models.StringList
}

// storageKey builds the blob path users/{uid}[/websites/{wid}][/{folder}]/{file}.
// The folder segment is slugified so user input never shapes raw keys.
func (s *MediaService) storageKey(userID uuid.UUID, in *UploadInput) string {
	key := "users/" + userID.String()
	if in.WebsiteID != nil {
		key += "/websites/" + in.WebsiteID.String()
	}
	if in.Folder != nil {
		if cleaned := slug.Generate(*in.Folder); cleaned != "" {
			key += "/" + cleaned
		}
	}
	return key + "/" + uuid.NewString()[:8] + "-" + slug.Generate(in.OriginalFilename)
}

// Upload persists the blob, then the metadata row. When the row insert
// fails after the blob write, the blob is orphaned; that leak is
// accepted and logged.
func (s *MediaService) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (*models.MediaAsset, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("object storage not configured")
	}

	// A website scope must be owned by the uploader.
	if in.WebsiteID != nil {
		w, err := s.websites.FindByIDForUser(*in.WebsiteID, userID)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, ErrNotFound
		}
	}

	key := s.storageKey(userID, &in)
	if err := s.storage.Upload(ctx, key, in.MimeType, bytes.NewReader(in.Data), int64(len(in.Data))); err != nil {
		return nil, fmt.Errorf("upload media blob: %w", err)
	}

	// A failed thumbnail write costs only the thumbnail, not the upload.
	var thumbPath *string
	if len(in.Thumbnail) > 0 {
		thumbKey := key + ".thumb.jpg"
		if err := s.storage.Upload(ctx, thumbKey, "image/jpeg", bytes.NewReader(in.Thumbnail), int64(len(in.Thumbnail))); err != nil {
			slog.Warn("thumbnail blob not written", "path", thumbKey, "error", err)
		} else {
			thumbPath = &thumbKey
		}
	}

	tags := in.Tags
	if tags == nil {
		tags = models.StringList{}
	}
	created, err := s.media.Create(&models.MediaAsset{
		UserID:           userID,
		WebsiteID:        in.WebsiteID,
		Name:             in.Name,
		OriginalFilename: in.OriginalFilename,
		FilePath:         key,
		ThumbnailPath:    thumbPath,
		FileSize:         int64(len(in.Data)),
		MimeType:         in.MimeType,
		AltText:          in.AltText,
		Tags:             tags,
		Folder:           in.Folder,
	})
	if err != nil {
		slog.Error("media row insert failed after blob write, blob leaked",
			"path", key, "user_id", userID, "error", err)
		return nil, err
	}
	return s.resolve(ctx, created), nil
}

// Get returns an owned asset with its file URL resolved.
func (s *MediaService) Get(ctx context.Context, id, userID uuid.UUID) (*models.MediaAsset, error) {
	m, err := s.media.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, m), nil
}

// List returns the caller's assets with AND-combined optional filters,
// newest first, URLs resolved per item.
func (s *MediaService) List(ctx context.Context, userID uuid.UUID, websiteID *uuid.UUID, folder *string, mimePrefix string) ([]models.MediaAsset, error) {
	items, err := s.media.ListForUser(userID, websiteID, folder, mimePrefix)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.resolve(ctx, &items[i])
	}
	return items, nil
}

// UpdateMetadata applies a partial metadata update. The stored file is
// untouched.
func (s *MediaService) UpdateMetadata(ctx context.Context, id, userID uuid.UUID, patch *models.MediaPatch) (*models.MediaAsset, error) {
	m, err := s.media.Update(id, userID, patch)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return s.resolve(ctx, m), nil
}

// Delete removes the blob by its raw stored path, then the row. A
// failed blob delete is logged and the row delete proceeds anyway.
func (s *MediaService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	m, err := s.media.FindByIDForUser(id, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}

	if s.storage != nil {
		if err := s.storage.Delete(ctx, m.FilePath); err != nil {
			slog.Warn("media blob not deleted, removing row anyway",
				"path", m.FilePath, "error", err)
		}
		if m.ThumbnailPath != nil {
			if err := s.storage.Delete(ctx, *m.ThumbnailPath); err != nil {
				slog.Warn("thumbnail blob not deleted", "path", *m.ThumbnailPath, "error", err)
			}
		}
	}

	deleted, err := s.media.Delete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ReassignFolder moves owned assets to a target folder, nil meaning
// uncategorized. Ownership of every ID is checked before any write; a
// single foreign ID fails the whole batch.
func (s *MediaService) ReassignFolder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, folder *string) ([]models.MediaAsset, error) {
	items, err := s.media.ReassignFolder(userID, ids, folder)
	if errors.Is(err, store.ErrPartialOwnership) {
		return nil, ErrPartialAccessDenied
	}
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.resolve(ctx, &items[i])
	}
	return items, nil
}
