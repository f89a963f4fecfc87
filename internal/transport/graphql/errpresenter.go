package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// Error codes set in the "code" extension. They match the REST error envelope.
const (
	codeNotFound        = "NOT_FOUND"
	codeValidation      = "VALIDATION"
	codeAlreadyExists   = "ALREADY_EXISTS"
	codeConflict        = "CONFLICT"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeInternal        = "INTERNAL"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes. Parse and validation errors of the query itself
// pass through unchanged.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		var (
			ve    *domain.ValidationError
			nf    *domain.NotFoundError
			plain *gqlerror.Error
		)

		switch {
		case errors.As(err, &ve):
			gqlErr.Extensions = map[string]any{"code": codeValidation, "fields": ve.Errors}
		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": codeValidation}
		case errors.As(err, &nf):
			gqlErr.Message = nf.Error()
			gqlErr.Extensions = map[string]any{"code": codeNotFound}
		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Message = "not found"
			gqlErr.Extensions = map[string]any{"code": codeNotFound}
		case errors.Is(err, domain.ErrAlreadyExists):
			gqlErr.Message = "already exists"
			gqlErr.Extensions = map[string]any{"code": codeAlreadyExists}
		case errors.Is(err, domain.ErrConflict):
			gqlErr.Message = "conflict"
			gqlErr.Extensions = map[string]any{"code": codeConflict}
		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Message = "authentication required"
			gqlErr.Extensions = map[string]any{"code": codeUnauthenticated}
		case errors.As(err, &plain) && plain.Unwrap() == nil:
			// Raised by the parser, the validator or the executor.
		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": codeInternal}
		}

		return gqlErr
	}
}
