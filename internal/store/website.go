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

// WebsiteStore handles all website-related database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// websiteColumns lists the columns selected in website queries.
const websiteColumns = `id, user_id, name, description, domain, favicon_path,
	theme_config, seo_config, is_published, created_at, updated_at`

// scanWebsite scans a website row from the result set.
func scanWebsite(scanner interface{ Scan(...any) error }) (*models.Website, error) {
	var w models.Website
	err := scanner.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Description, &w.Domain, &w.FaviconPath,
		&w.ThemeConfig, &w.SEOConfig, &w.IsPublished, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWithHomePage inserts a website together with its home page in a
// single transaction. A website must never exist without a home page, so
// a failure on either insert rolls back both.
func (s *WebsiteStore) CreateWithHomePage(w *models.Website, home *models.Page) (*models.Website, *models.Page, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("create website begin: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		INSERT INTO websites (user_id, name, description, domain, theme_config, seo_config)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+websiteColumns,
		w.UserID, w.Name, w.Description, w.Domain, w.ThemeConfig, w.SEOConfig,
	)
	created, err := scanWebsite(row)
	if err != nil {
		return nil, nil, fmt.Errorf("create website: %w", err)
	}

	pageRow := tx.QueryRow(`
		INSERT INTO pages (website_id, title, slug, meta_description,
			content_structure, styles, is_home_page, is_published, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, TRUE, 1)
		RETURNING `+pageColumns,
		created.ID, home.Title, home.Slug, home.MetaDescription,
		home.ContentStructure, home.Styles,
	)
	homePage, err := scanPage(pageRow)
	if err != nil {
		return nil, nil, fmt.Errorf("create home page: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("create website commit: %w", err)
	}
	return created, homePage, nil
}

// FindByIDForUser retrieves a website only if it is owned by the given
// user. Returns nil when the website does not exist or belongs to
// someone else — the two cases are deliberately indistinguishable.
func (s *WebsiteStore) FindByIDForUser(id, userID uuid.UUID) (*models.Website, error) {
	row := s.db.QueryRow(
		`SELECT `+websiteColumns+` FROM websites WHERE id = $1 AND user_id = $2`,
		id, userID)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website: %w", err)
	}
	return w, nil
}

// ListForUser returns all websites owned by a user, most recently
// updated first.
func (s *WebsiteStore) ListForUser(userID uuid.UUID) ([]models.Website, error) {
	rows, err := s.db.Query(
		`SELECT `+websiteColumns+` FROM websites WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()

	var items []models.Website
	for rows.Next() {
		w, err := scanWebsite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

// Update applies a partial update to an owned website. Only non-nil
// patch fields are written; column names come from the fixed whitelist
// below, never from request data. Returns nil if the website is not
// found under the owner.
func (s *WebsiteStore) Update(id, userID uuid.UUID, p *models.WebsitePatch) (*models.Website, error) {
	b := &setBuilder{}
	b.raw("updated_at = NOW()")
	if p.Name != nil {
		b.add("name", *p.Name)
	}
	if p.Description != nil {
		b.add("description", *p.Description)
	}
	if p.Domain != nil {
		b.add("domain", *p.Domain)
	}
	if p.ThemeConfig != nil {
		b.add("theme_config", *p.ThemeConfig)
	}
	if p.SEOConfig != nil {
		b.add("seo_config", *p.SEOConfig)
	}

	query := `UPDATE websites SET ` + b.clause() +
		` WHERE id = ` + b.next(id) + ` AND user_id = ` + b.next(userID) +
		` RETURNING ` + websiteColumns
	row := s.db.QueryRow(query, b.args...)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update website: %w", err)
	}
	return w, nil
}

// SetFavicon stores the favicon's storage path on an owned website.
func (s *WebsiteStore) SetFavicon(id, userID uuid.UUID, path string) (*models.Website, error) {
	row := s.db.QueryRow(`
		UPDATE websites SET favicon_path = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+websiteColumns,
		path, id, userID)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set favicon: %w", err)
	}
	return w, nil
}

// SetPublished flips the published flag on an owned website. Idempotent.
func (s *WebsiteStore) SetPublished(id, userID uuid.UUID, published bool) (*models.Website, error) {
	row := s.db.QueryRow(`
		UPDATE websites SET is_published = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+websiteColumns,
		published, id, userID)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set website published: %w", err)
	}
	return w, nil
}

// DeleteCascade removes an owned website and all of its pages in one
// transaction, pages first. Returns false if the website is not found
// under the owner.
func (s *WebsiteStore) DeleteCascade(id, userID uuid.UUID) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("delete website begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM pages
		WHERE website_id IN (SELECT id FROM websites WHERE id = $1 AND user_id = $2)
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete website pages: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM websites WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete website: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete website rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("delete website commit: %w", err)
	}
	return true, nil
}
