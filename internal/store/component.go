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

// ComponentStore handles custom component persistence. Built-in catalog
// components never touch this store — they live in internal/catalog.
type ComponentStore struct {
	db *sql.DB
}

// NewComponentStore creates a new ComponentStore with the given database connection.
func NewComponentStore(db *sql.DB) *ComponentStore {
	return &ComponentStore{db: db}
}

// componentColumns lists the columns selected in component queries.
const componentColumns = `id, user_id, name, description, category, component_type,
	code, styles, props_schema, preview_image_path, is_public, version,
	created_at, updated_at`

// scanComponent scans a component row from the result set.
func scanComponent(scanner interface{ Scan(...any) error }) (*models.Component, error) {
	var c models.Component
	err := scanner.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Category, &c.Type,
		&c.Code, &c.Styles, &c.PropsSchema, &c.PreviewImagePath, &c.IsPublic,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new custom component and returns it with the
// generated ID.
func (s *ComponentStore) Create(c *models.Component) (*models.Component, error) {
	row := s.db.QueryRow(`
		INSERT INTO components (user_id, name, description, category,
			component_type, code, styles, props_schema, is_public, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+componentColumns,
		c.UserID, c.Name, c.Description, c.Category, c.Type,
		c.Code, c.Styles, c.PropsSchema, c.IsPublic, c.Version,
	)
	created, err := scanComponent(row)
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	return created, nil
}

// FindOwned retrieves a component only if the given user created it.
// Used for mutating paths, where public visibility grants nothing.
func (s *ComponentStore) FindOwned(id, userID uuid.UUID) (*models.Component, error) {
	row := s.db.QueryRow(
		`SELECT `+componentColumns+` FROM components WHERE id = $1 AND user_id = $2`,
		id, userID)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find owned component: %w", err)
	}
	return c, nil
}

// FindOwnedOrPublic retrieves a component the user created or any
// component marked public. Used for read paths.
func (s *ComponentStore) FindOwnedOrPublic(id, userID uuid.UUID) (*models.Component, error) {
	row := s.db.QueryRow(`
		SELECT `+componentColumns+` FROM components
		WHERE id = $1 AND (user_id = $2 OR is_public = TRUE)
	`, id, userID)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find component: %w", err)
	}
	return c, nil
}

// ListForOwner returns a user's components, optionally filtered by
// category, most recently updated first.
func (s *ComponentStore) ListForOwner(userID uuid.UUID, category string) ([]models.Component, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category != "" {
		rows, err = s.db.Query(`
			SELECT `+componentColumns+` FROM components
			WHERE user_id = $1 AND category = $2
			ORDER BY updated_at DESC
		`, userID, category)
	} else {
		rows, err = s.db.Query(`
			SELECT `+componentColumns+` FROM components
			WHERE user_id = $1
			ORDER BY updated_at DESC
		`, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()
	return collectComponents(rows)
}

// ListPublic returns all public custom components, optionally filtered
// by category, most recently updated first.
func (s *ComponentStore) ListPublic(category string) ([]models.Component, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category != "" {
		rows, err = s.db.Query(`
			SELECT `+componentColumns+` FROM components
			WHERE is_public = TRUE AND category = $1
			ORDER BY updated_at DESC
		`, category)
	} else {
		rows, err = s.db.Query(`
			SELECT `+componentColumns+` FROM components
			WHERE is_public = TRUE
			ORDER BY updated_at DESC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("list public components: %w", err)
	}
	defer rows.Close()
	return collectComponents(rows)
}

func collectComponents(rows *sql.Rows) ([]models.Component, error) {
	var items []models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Update applies a partial update to an owned component, always stamping
// the supplied version and refreshing updated_at regardless of which
// fields changed. Returns nil if the component is not found under the
// owner.
func (s *ComponentStore) Update(id, userID uuid.UUID, patch *models.ComponentPatch, version string) (*models.Component, error) {
	b := &setBuilder{}
	b.raw("updated_at = NOW()")
	b.add("version", version)
	if patch.Name != nil {
		b.add("name", *patch.Name)
	}
	if patch.Description != nil {
		b.add("description", *patch.Description)
	}
	if patch.Code != nil {
		b.add("code", *patch.Code)
	}
	if patch.Styles != nil {
		b.add("styles", *patch.Styles)
	}
	if patch.PropsSchema != nil {
		b.add("props_schema", *patch.PropsSchema)
	}
	if patch.IsPublic != nil {
		b.add("is_public", *patch.IsPublic)
	}

	query := `UPDATE components SET ` + b.clause() +
		` WHERE id = ` + b.next(id) + ` AND user_id = ` + b.next(userID) +
		` RETURNING ` + componentColumns
	row := s.db.QueryRow(query, b.args...)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	return c, nil
}

// SetPreviewImage stores the preview image's storage path on an owned
// component.
func (s *ComponentStore) SetPreviewImage(id, userID uuid.UUID, path string) (*models.Component, error) {
	row := s.db.QueryRow(`
		UPDATE components SET preview_image_path = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+componentColumns,
		path, id, userID)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set preview image: %w", err)
	}
	return c, nil
}

// Delete removes an owned component. Returns false if nothing was deleted.
func (s *ComponentStore) Delete(id, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(
		`DELETE FROM components WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return false, fmt.Errorf("delete component: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete component rows: %w", err)
	}
	return n > 0, nil
}
