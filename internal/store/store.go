// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by stores. The service layer maps these onto
// its caller-facing taxonomy.
var (
	// ErrDuplicateSlug is returned when a page slug collides with another
	// page in the same website.
	ErrDuplicateSlug = errors.New("slug already exists in this website")

	// ErrPartialOwnership is returned by bulk operations when at least
	// one supplied ID is not found under the expected owner scope. No
	// writes are applied in that case.
	ErrPartialOwnership = errors.New("one or more resources not found or access denied")
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation, used to map slug collisions.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// setBuilder accumulates SET clauses and positional args for partial
// updates. Column names are always literals at the call site — only
// values travel as parameters.
type setBuilder struct {
	sets []string
	args []any
}

// add appends "col = $n" with the next positional parameter.
func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

// raw appends a literal SET expression with no parameter.
func (b *setBuilder) raw(expr string) {
	b.sets = append(b.sets, expr)
}

// next registers an extra arg (for WHERE clauses) and returns its
// positional placeholder.
func (b *setBuilder) next(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// clause joins the accumulated SET expressions.
func (b *setBuilder) clause() string {
	return strings.Join(b.sets, ", ")
}

// inPlaceholders renders "$start, $start+1, ..." for n values, used to
// build IN lists for bulk ID operations.
func inPlaceholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}
