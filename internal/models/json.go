// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap maps a JSONB column to a generic string-keyed map. Used for
// theme/SEO configuration, page styles, and page content structures.
type JSONMap map[string]any

// Value implements driver.Valuer so JSONMap can be written to a JSONB column.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for reading a JSONB column.
func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		if s, ok := src.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("jsonmap scan: unsupported type %T", src)
		}
	}
	return json.Unmarshal(b, m)
}

// StringList maps a JSONB column holding a JSON array of strings.
// Used for media asset tags.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		if s, ok := src.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("stringlist scan: unsupported type %T", src)
		}
	}
	return json.Unmarshal(b, l)
}
