// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Website is the root aggregate owned by a single user. Deleting a
// website cascades to all of its pages. Every website has exactly one
// home page, created together with the website itself.
type Website struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Domain      *string   `json:"domain,omitempty"`
	FaviconPath *string   `json:"-"`
	ThemeConfig JSONMap   `json:"theme_config"`
	SEOConfig   JSONMap   `json:"seo_config"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// FaviconURL is the presigned URL resolved from FaviconPath. The raw
	// storage key is never serialized.
	FaviconURL *string `json:"favicon_url,omitempty"`
}

// WebsitePatch carries a partial website update. Nil fields are left
// untouched; non-nil fields overwrite, including with empty values.
// This preserves the omitted-vs-explicitly-empty distinction without
// building SQL fragments from request data.
type WebsitePatch struct {
	Name        *string
	Description *string
	Domain      *string
	ThemeConfig *JSONMap
	SEOConfig   *JSONMap
}

// IsZero reports whether the patch carries no changes.
func (p *WebsitePatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Domain == nil &&
		p.ThemeConfig == nil && p.SEOConfig == nil
}
