// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"siteforge/internal/models"
)

// PageStore handles all page-related database operations. Page ownership
// is transitive through the parent website, so every guarded query joins
// or subselects against websites.user_id.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

// pageColumns lists the columns selected in page queries.
const pageColumns = `id, website_id, title, slug, meta_description, meta_keywords,
	content_structure, styles, is_home_page, is_published, sort_order,
	created_at, updated_at`

// pageColumnsPrefixed is pageColumns qualified with the pages alias for joins.
const pageColumnsPrefixed = `p.id, p.website_id, p.title, p.slug, p.meta_description,
	p.meta_keywords, p.content_structure, p.styles, p.is_home_page, p.is_published,
	p.sort_order, p.created_at, p.updated_at`

// scanPage scans a page row from the result set.
func scanPage(scanner interface{ Scan(...any) error }) (*models.Page, error) {
	var p models.Page
	err := scanner.Scan(
		&p.ID, &p.WebsiteID, &p.Title, &p.Slug, &p.MetaDescription, &p.MetaKeywords,
		&p.ContentStructure, &p.Styles, &p.IsHomePage, &p.IsPublished, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new page, assigning sort_order = max(existing) + 1
// within the website in the same statement. A slug collision inside the
// website surfaces as ErrDuplicateSlug (backed by the unique index).
func (s *PageStore) Create(p *models.Page) (*models.Page, error) {
	row := s.db.QueryRow(`
		INSERT INTO pages (website_id, title, slug, meta_description,
			content_structure, styles, is_home_page, is_published, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM pages WHERE website_id = $1))
		RETURNING `+pageColumns,
		p.WebsiteID, p.Title, p.Slug, p.MetaDescription,
		p.ContentStructure, p.Styles, p.IsHomePage, p.IsPublished,
	)
	created, err := scanPage(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// FindByIDForUser retrieves a page only if its parent website is owned
// by the given user. Returns nil for both missing and foreign pages.
func (s *PageStore) FindByIDForUser(pageID, userID uuid.UUID) (*models.Page, error) {
	row := s.db.QueryRow(`
		SELECT `+pageColumnsPrefixed+`
		FROM pages p
		JOIN websites w ON p.website_id = w.id
		WHERE p.id = $1 AND w.user_id = $2
	`, pageID, userID)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page: %w", err)
	}
	return p, nil
}

// ListForWebsite returns all pages of a website in navigation order.
// Website ownership must be verified by the caller before listing.
func (s *PageStore) ListForWebsite(websiteID uuid.UUID) ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT `+pageColumns+`
		FROM pages
		WHERE website_id = $1
		ORDER BY sort_order, created_at
	`, websiteID)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var items []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// SlugExists reports whether another page in the website already uses
// the slug. excludeID skips the page being renamed.
func (s *PageStore) SlugExists(websiteID uuid.UUID, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM pages WHERE website_id = $1 AND slug = $2 AND id != $3
		)
	`, websiteID, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// UpdateContent atomically replaces a page's content structure. The
// structure is opaque at this layer; no merge is performed. Returns nil
// if the page is not found under the owner.
func (s *PageStore) UpdateContent(pageID, userID uuid.UUID, structure models.JSONMap) (*models.Page, error) {
	row := s.db.QueryRow(`
		UPDATE pages SET content_structure = $1, updated_at = NOW()
		WHERE id = $2
		  AND website_id IN (SELECT id FROM websites WHERE user_id = $3)
		RETURNING `+pageColumns,
		structure, pageID, userID)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update page content: %w", err)
	}
	return p, nil
}

// UpdateStyles atomically replaces a page's style configuration.
func (s *PageStore) UpdateStyles(pageID, userID uuid.UUID, styles models.JSONMap) (*models.Page, error) {
	row := s.db.QueryRow(`
		UPDATE pages SET styles = $1, updated_at = NOW()
		WHERE id = $2
		  AND website_id IN (SELECT id FROM websites WHERE user_id = $3)
		RETURNING `+pageColumns,
		styles, pageID, userID)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update page styles: %w", err)
	}
	return p, nil
}

// UpdateMetadata applies a partial metadata update to an owned page.
// Slug uniqueness is backed by the unique index and surfaces as
// ErrDuplicateSlug.
func (s *PageStore) UpdateMetadata(pageID, userID uuid.UUID, patch *models.PagePatch) (*models.Page, error) {
	b := &setBuilder{}
	b.raw("updated_at = NOW()")
	if patch.Title != nil {
		b.add("title", *patch.Title)
	}
	if patch.Slug != nil {
		b.add("slug", *patch.Slug)
	}
	if patch.MetaDescription != nil {
		b.add("meta_description", *patch.MetaDescription)
	}
	if patch.MetaKeywords != nil {
		b.add("meta_keywords", *patch.MetaKeywords)
	}

	query := `UPDATE pages SET ` + b.clause() +
		` WHERE id = ` + b.next(pageID) +
		` AND website_id IN (SELECT id FROM websites WHERE user_id = ` + b.next(userID) + `)` +
		` RETURNING ` + pageColumns
	row := s.db.QueryRow(query, b.args...)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("update page metadata: %w", err)
	}
	return p, nil
}

// SetPublished flips the published flag on an owned page.
func (s *PageStore) SetPublished(pageID, userID uuid.UUID, published bool) (*models.Page, error) {
	row := s.db.QueryRow(`
		UPDATE pages SET is_published = $1, updated_at = NOW()
		WHERE id = $2
		  AND website_id IN (SELECT id FROM websites WHERE user_id = $3)
		RETURNING `+pageColumns,
		published, pageID, userID)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set page published: %w", err)
	}
	return p, nil
}

// Delete removes an owned, non-home page. The is_home_page guard in the
// statement is a backstop; the service refuses home page deletion before
// reaching here. Returns false if nothing was deleted.
func (s *PageStore) Delete(pageID, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM pages
		WHERE id = $1
		  AND is_home_page = FALSE
		  AND website_id IN (SELECT id FROM websites WHERE user_id = $2)
	`, pageID, userID)
	if err != nil {
		return false, fmt.Errorf("delete page: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete page rows: %w", err)
	}
	return n > 0, nil
}

// Reorder bulk-applies sort orders to pages of one website inside a
// transaction. All supplied page IDs must belong to the website, or the
// whole batch fails with ErrPartialOwnership and nothing is written.
func (s *PageStore) Reorder(websiteID uuid.UUID, orders []models.PageOrder) ([]models.Page, error) {
	if len(orders) == 0 {
		return s.ListForWebsite(websiteID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("reorder begin: %w", err)
	}
	defer tx.Rollback()

	// Pre-validate: every supplied ID must be a page of this website.
	args := make([]any, 0, len(orders)+1)
	args = append(args, websiteID)
	for _, o := range orders {
		args = append(args, o.PageID)
	}
	var count int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM pages
		WHERE website_id = $1 AND id IN (`+inPlaceholders(2, len(orders))+`)
	`, args...).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("reorder validate: %w", err)
	}
	if count != len(orders) {
		return nil, ErrPartialOwnership
	}

	for _, o := range orders {
		_, err := tx.Exec(`
			UPDATE pages SET sort_order = $1, updated_at = NOW()
			WHERE id = $2 AND website_id = $3
		`, o.SortOrder, o.PageID, websiteID)
		if err != nil {
			return nil, fmt.Errorf("reorder update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reorder commit: %w", err)
	}
	return s.ListForWebsite(websiteID)
}

// CountForWebsite returns the number of pages in a website.
func (s *PageStore) CountForWebsite(websiteID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pages WHERE website_id = $1`, websiteID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return count, nil
}
