// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ComponentType distinguishes the hardcoded catalog from user-authored
// components.
type ComponentType string

const (
	ComponentTypeBuiltIn ComponentType = "built-in"
	ComponentTypeCustom  ComponentType = "custom"
)

// BuiltInUserID is the reserved owner for catalog components.
var BuiltInUserID = uuid.Nil

// Component is a reusable building block placed on pages. Built-ins are
// identified by stable human-readable slugs and never persisted; custom
// components get UUID identifiers and live in the database.
type Component struct {
	ID               string        `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	Name             string        `json:"name"`
	Description      *string       `json:"description,omitempty"`
	Category         string        `json:"category"`
	Type             ComponentType `json:"component_type"`
	Code             *string       `json:"code,omitempty"`
	Styles           *string       `json:"styles,omitempty"`
	PropsSchema      PropsSchema   `json:"props_schema"`
	PreviewImagePath *string       `json:"-"`
	IsPublic         bool          `json:"is_public"`
	Version          string        `json:"version"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// PreviewImageURL is the presigned URL resolved from
	// PreviewImagePath. The raw storage key is never serialized.
	PreviewImageURL *string `json:"preview_image_url,omitempty"`
}

// IsBuiltIn returns true for catalog components.
func (c *Component) IsBuiltIn() bool {
	return c.Type == ComponentTypeBuiltIn
}

// BumpedVersion returns the component's version with the patch level
// incremented. Versions that don't parse as maj.min.patch fall back to
// "1.0.1" so an update always produces a version change.
func (c *Component) BumpedVersion() string {
	parts := strings.Split(c.Version, ".")
	if len(parts) != 3 {
		return "1.0.1"
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return "1.0.1"
	}
	return fmt.Sprintf("%s.%s.%d", parts[0], parts[1], patch+1)
}

// PropDescriptor describes a single configurable prop of a component:
// its type, default value, and editor hints.
type PropDescriptor struct {
	Type        string   `json:"type"` // boolean, number, string, select, color, image
	Default     any      `json:"default"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
	Multiline   bool     `json:"multiline,omitempty"`
	Required    bool     `json:"required,omitempty"`
}

// PropsSchema maps prop names to their descriptors, stored as JSONB.
type PropsSchema map[string]PropDescriptor

// Value implements driver.Valuer.
func (s PropsSchema) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *PropsSchema) Scan(src any) error {
	if src == nil {
		*s = PropsSchema{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		if str, ok := src.(string); ok {
			b = []byte(str)
		} else {
			return fmt.Errorf("propsschema scan: unsupported type %T", src)
		}
	}
	return json.Unmarshal(b, s)
}

// ComponentPatch carries a partial update for a custom component.
// Nil fields are left untouched.
type ComponentPatch struct {
	Name        *string
	Description *string
	Code        *string
	Styles      *string
	PropsSchema *PropsSchema
	IsPublic    *bool
}

// IsZero reports whether the patch carries no changes.
func (p *ComponentPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Code == nil &&
		p.Styles == nil && p.PropsSchema == nil && p.IsPublic == nil
}
