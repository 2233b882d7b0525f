// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentStructureKey is the single recognized top-level key of a page's
// content structure. Its value is the ordered list of component
// placements; the page layer treats each placement as opaque.
const ContentStructureKey = "components"

// Page belongs to exactly one website (immutable after creation) and
// holds the JSON component tree that the builder edits. Slugs are unique
// within a website; sort_order drives the navigation order.
type Page struct {
	ID               uuid.UUID `json:"id"`
	WebsiteID        uuid.UUID `json:"website_id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	MetaDescription  *string   `json:"meta_description,omitempty"`
	MetaKeywords     *string   `json:"meta_keywords,omitempty"`
	ContentStructure JSONMap   `json:"content_structure"`
	Styles           JSONMap   `json:"styles"`
	IsHomePage       bool      `json:"is_home_page"`
	IsPublished      bool      `json:"is_published"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EmptyContentStructure returns the initial content structure assigned
// to every new page: a components key with an empty placement list.
func EmptyContentStructure() JSONMap {
	return JSONMap{ContentStructureKey: []any{}}
}

// PagePatch carries a partial metadata update for a page. Nil fields are
// left untouched. Content structure and styles are replaced atomically
// through dedicated operations, never patched.
type PagePatch struct {
	Title           *string
	Slug            *string
	MetaDescription *string
	MetaKeywords    *string
}

// IsZero reports whether the patch carries no changes.
func (p *PagePatch) IsZero() bool {
	return p.Title == nil && p.Slug == nil &&
		p.MetaDescription == nil && p.MetaKeywords == nil
}

// PageOrder pairs a page ID with its target sort order for bulk reordering.
type PageOrder struct {
	PageID    uuid.UUID `json:"page_id"`
	SortOrder int       `json:"sort_order"`
}
