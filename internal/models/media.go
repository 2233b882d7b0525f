// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaAsset is the metadata record for a file stored in the object
// bucket. The file itself lives at FilePath; callers receive a
// time-limited presigned URL, never the raw key.
type MediaAsset struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	WebsiteID        *uuid.UUID `json:"website_id,omitempty"`
	Name             string     `json:"name"`
	OriginalFilename string     `json:"original_filename"`
	FilePath         string     `json:"-"`
	ThumbnailPath    *string    `json:"-"`
	FileSize         int64      `json:"file_size"`
	MimeType         string     `json:"mime_type"`
	AltText          *string    `json:"alt_text,omitempty"`
	Tags             StringList `json:"tags"`
	Folder           *string    `json:"folder,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// FileURL and ThumbnailURL are the presigned URLs resolved from
	// FilePath and ThumbnailPath. The raw storage keys are never
	// serialized.
	FileURL      string  `json:"file_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

// IsImage returns true if the asset has an image MIME type.
func (m *MediaAsset) IsImage() bool {
	return strings.HasPrefix(m.MimeType, "image/")
}

// HumanSize returns a human-readable file size string.
func (m *MediaAsset) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case m.FileSize >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.FileSize)/float64(mb))
	case m.FileSize >= kb:
		return fmt.Sprintf("%.0f KB", float64(m.FileSize)/float64(kb))
	default:
		return fmt.Sprintf("%d B", m.FileSize)
	}
}

// MediaPatch carries a partial metadata update for a media asset.
// Nil fields are left untouched. Folder moves across several assets go
// through the bulk reassign operation instead.
type MediaPatch struct {
	Name    *string
	AltText *string
	Tags    *StringList
	Folder  *string
}

// IsZero reports whether the patch carries no changes.
func (p *MediaPatch) IsZero() bool {
	return p.Name == nil && p.AltText == nil && p.Tags == nil && p.Folder == nil
}
