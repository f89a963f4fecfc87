package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

const (
	codeUniqueViolation           = "23505"
	codeForeignKeyViolation       = "23503"
	codeCheckViolation            = "23514"
	codeUntranslatableCharacter   = "22P05"
	codeInvalidTextRepresentation = "22P02"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, entity domain.EntityType, id uuid.UUID) error {
	return mapError(err, entity, id, domain.ErrNotFound)
}

// MapDeleteError is MapError for DELETE statements: a foreign key violation
// means the row is still referenced and maps to domain.ErrConflict.
func MapDeleteError(err error, entity domain.EntityType, id uuid.UUID) error {
	return mapError(err, entity, id, domain.ErrConflict)
}

// IsUniqueViolation reports whether err is a unique_violation on the named constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func mapError(err error, entity domain.EntityType, id uuid.UUID, fkErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, fkErr)
		case codeCheckViolation, codeUntranslatableCharacter, codeInvalidTextRepresentation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
