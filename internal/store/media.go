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

// MediaStore handles media asset metadata. The files themselves live in
// object storage; rows here reference them by storage path.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

// mediaColumns lists the columns selected in media asset queries.
const mediaColumns = `id, user_id, website_id, name, original_filename, file_path,
	thumbnail_path, file_size, mime_type, alt_text, tags, folder, created_at, updated_at`

// scanMediaAsset scans a media asset row from the result set.
func scanMediaAsset(scanner interface{ Scan(...any) error }) (*models.MediaAsset, error) {
	var m models.MediaAsset
	err := scanner.Scan(
		&m.ID, &m.UserID, &m.WebsiteID, &m.Name, &m.OriginalFilename, &m.FilePath,
		&m.ThumbnailPath, &m.FileSize, &m.MimeType, &m.AltText, &m.Tags, &m.Folder,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new media asset record and returns it with the
// generated ID.
func (s *MediaStore) Create(m *models.MediaAsset) (*models.MediaAsset, error) {
	row := s.db.QueryRow(`
		INSERT INTO media_assets (user_id, website_id, name, original_filename,
			file_path, thumbnail_path, file_size, mime_type, alt_text, tags, folder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+mediaColumns,
		m.UserID, m.WebsiteID, m.Name, m.OriginalFilename,
		m.FilePath, m.ThumbnailPath, m.FileSize, m.MimeType, m.AltText, m.Tags, m.Folder,
	)
	created, err := scanMediaAsset(row)
	if err != nil {
		return nil, fmt.Errorf("create media asset: %w", err)
	}
	return created, nil
}

// FindByIDForUser retrieves a media asset only if the given user owns
// it. Returns nil for both missing and foreign assets.
func (s *MediaStore) FindByIDForUser(id, userID uuid.UUID) (*models.MediaAsset, error) {
	row := s.db.QueryRow(
		`SELECT `+mediaColumns+` FROM media_assets WHERE id = $1 AND user_id = $2`,
		id, userID)
	m, err := scanMediaAsset(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media asset: %w", err)
	}
	return m, nil
}

// ListForUser returns a user's media assets with AND-combined optional
// filters, newest first. The MIME filter matches by prefix, so "image/"
// covers every image subtype.
func (s *MediaStore) ListForUser(userID uuid.UUID, websiteID *uuid.UUID, folder *string, mimePrefix string) ([]models.MediaAsset, error) {
	b := &setBuilder{}
	query := `SELECT ` + mediaColumns + ` FROM media_assets WHERE user_id = ` + b.next(userID)
	if websiteID != nil {
		query += ` AND website_id = ` + b.next(*websiteID)
	}
	if folder != nil {
		query += ` AND folder = ` + b.next(*folder)
	}
	if mimePrefix != "" {
		query += ` AND mime_type LIKE ` + b.next(mimePrefix+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list media assets: %w", err)
	}
	defer rows.Close()
	return collectMediaAssets(rows)
}

func collectMediaAssets(rows *sql.Rows) ([]models.MediaAsset, error) {
	var items []models.MediaAsset
	for rows.Next() {
		m, err := scanMediaAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media asset: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// Update applies a partial metadata update to an owned asset. Returns
// nil if the asset is not found under the owner.
func (s *MediaStore) Update(id, userID uuid.UUID, patch *models.MediaPatch) (*models.MediaAsset, error) {
	b := &setBuilder{}
	b.raw("updated_at = NOW()")
	if patch.Name != nil {
		b.add("name", *patch.Name)
	}
	if patch.AltText != nil {
		b.add("alt_text", *patch.AltText)
	}
	if patch.Tags != nil {
		b.add("tags", *patch.Tags)
	}
	if patch.Folder != nil {
		b.add("folder", *patch.Folder)
	}

	query := `UPDATE media_assets SET ` + b.clause() +
		` WHERE id = ` + b.next(id) + ` AND user_id = ` + b.next(userID) +
		` RETURNING ` + mediaColumns
	row := s.db.QueryRow(query, b.args...)
	m, err := scanMediaAsset(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update media asset: %w", err)
	}
	return m, nil
}

// Delete removes an owned media asset record. Returns false if nothing
// was deleted. Blob cleanup is the caller's responsibility and happens
// before this call.
func (s *MediaStore) Delete(id, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(
		`DELETE FROM media_assets WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return false, fmt.Errorf("delete media asset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete media asset rows: %w", err)
	}
	return n > 0, nil
}

// ReassignFolder moves a set of owned assets to a target folder (nil
// means uncategorized) inside a transaction. Ownership of every ID is
// verified up front; a single miss fails the whole batch with
// ErrPartialOwnership and nothing moves. Results come back ordered by
// name.
func (s *MediaStore) ReassignFolder(userID uuid.UUID, ids []uuid.UUID, folder *string) ([]models.MediaAsset, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("reassign begin: %w", err)
	}
	defer tx.Rollback()

	idArgs := make([]any, 0, len(ids)+1)
	idArgs = append(idArgs, userID)
	for _, id := range ids {
		idArgs = append(idArgs, id)
	}
	placeholders := inPlaceholders(2, len(ids))

	var count int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM media_assets
		WHERE user_id = $1 AND id IN (`+placeholders+`)
	`, idArgs...).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("reassign validate: %w", err)
	}
	if count != len(ids) {
		return nil, ErrPartialOwnership
	}

	updateArgs := make([]any, 0, len(ids)+2)
	updateArgs = append(updateArgs, folder, userID)
	for _, id := range ids {
		updateArgs = append(updateArgs, id)
	}
	_, err = tx.Exec(`
		UPDATE media_assets SET folder = $1, updated_at = NOW()
		WHERE user_id = $2 AND id IN (`+inPlaceholders(3, len(ids))+`)
	`, updateArgs...)
	if err != nil {
		return nil, fmt.Errorf("reassign update: %w", err)
	}

	rows, err := tx.Query(`
		SELECT `+mediaColumns+` FROM media_assets
		WHERE user_id = $1 AND id IN (`+placeholders+`)
		ORDER BY name
	`, idArgs...)
	if err != nil {
		return nil, fmt.Errorf("reassign list: %w", err)
	}
	items, err := collectMediaAssets(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reassign commit: %w", err)
	}
	return items, nil
}
