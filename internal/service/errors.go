// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service implements the builder's domain operations on top of
// the stores: website and page lifecycle, the component catalog, and the
// media registry. Every mutating operation resolves ownership as part of
// the lookup, so callers never learn whether a foreign resource exists.
package service

import "errors"

var (
	// ErrNotFound covers both a missing resource and a resource owned by
	// someone else. The two cases are deliberately conflated to prevent
	// resource enumeration.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlug is returned when a page slug is already taken
	// within the same website.
	ErrDuplicateSlug = errors.New("slug already in use")

	// ErrInvalidCode is returned when custom component code is empty or
	// does not start with function, const, or export.
	ErrInvalidCode = errors.New("invalid component code")

	// ErrCannotDeleteHomePage is returned when deleting the home page of
	// a website is attempted.
	ErrCannotDeleteHomePage = errors.New("home page cannot be deleted")

	// ErrPartialAccessDenied is returned by bulk operations when any
	// supplied ID is not owned by the caller. Nothing is applied.
	ErrPartialAccessDenied = errors.New("one or more resources are not accessible")
)
