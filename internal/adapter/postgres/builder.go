package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// NullJSON converts an opaque JSON value into a query argument; empty means NULL.
func NullJSON(v []byte) any {
	if len(v) == 0 {
		return nil
	}
	return string(v)
}

// NullString maps an empty string to NULL so callers can clear a column.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
