// Package repository provides data access interfaces and implementations
// for the NC News API.
//
// This package defines repository interfaces and their PostgreSQL
// implementations following the repository pattern to abstract data
// persistence from the HTTP layer.
//
// All repository implementations are safe for concurrent use by multiple
// goroutines. The underlying pgxpool handles connection pooling and
// synchronization.
//
// All methods return domain-specific errors from the domain package:
//
//   - domain.NotFoundError: the referenced entity does not exist
//   - domain.ValidationError: input violated a whitelist or shape rule
//
// Identifier parameters (article and comment ids) are deliberately typed
// as strings: they are bound as text parameters and PostgreSQL performs
// the integer cast. A non-numeric id therefore surfaces as a store-level
// type fault (SQLSTATE 22P02) rather than being pre-validated here,
// keeping a single source of truth for what counts as a well-formed id.
package repository

import (
	"strings"

	"github.com/ncnews/news-api/internal/database"
)

// DBTX is the database interface supporting both pool and transaction contexts.
// This allows repositories to work with both direct pool connections and transactions.
type DBTX = database.DBTX

// pgErrInvalidTextRepresentation is the SQLSTATE class raised when a bound
// text value cannot be cast to the column's type (e.g. a non-numeric id).
const pgErrInvalidTextRepresentation = "22P02"

// pgErrForeignKeyViolation is the SQLSTATE class raised when an insert
// references a missing parent row.
const pgErrForeignKeyViolation = "23503"

// joinWithAnd renders a list as "a, b and c" for client-facing messages.
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
