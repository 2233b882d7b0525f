// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for request fields.
const (
	maxNameLen     = 200
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxDescLen     = 2_000
	maxCodeLen     = 100_000
	maxStylesLen   = 100_000
	maxAltTextLen  = 1_000
	maxFolderLen   = 200
	maxMetaDescLen = 500
)

// validateWebsiteName checks the website name and returns the first
// error found.
func validateWebsiteName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	return ""
}

// validatePageFields checks page title and slug inputs.
func validatePageFields(title, slug string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(slug) == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	return ""
}

// validatePagePatch checks the fields present in a metadata patch.
func validatePagePatch(title, slug *string) string {
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return "Title cannot be empty."
		}
		if utf8.RuneCountInString(*title) > maxTitleLen {
			return "Title is too long (max 300 characters)."
		}
	}
	if slug != nil {
		if strings.TrimSpace(*slug) == "" {
			return "Slug cannot be empty."
		}
		if utf8.RuneCountInString(*slug) > maxSlugLen {
			return "Slug is too long (max 300 characters)."
		}
	}
	return ""
}

// validateComponentFields checks custom component name and code sizes.
// The code prefix rule itself lives in the service layer.
func validateComponentFields(name, code string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(code) > maxCodeLen {
		return "Code is too long (max 100,000 characters)."
	}
	return ""
}

// validateMediaFields checks media metadata inputs.
func validateMediaFields(name string, altText, folder *string) string {
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if altText != nil && utf8.RuneCountInString(*altText) > maxAltTextLen {
		return "Alt text is too long (max 1,000 characters)."
	}
	if folder != nil && utf8.RuneCountInString(*folder) > maxFolderLen {
		return "Folder is too long (max 200 characters)."
	}
	return ""
}
