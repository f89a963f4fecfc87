// Package translation implements the question translation repository using PostgreSQL.
// A question has at most one translation per language.
package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/datacollect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

const (
	table              = "question_translations"
	languageConstraint = "uq_question_translations_language"
)

var (
	columns = []string{
		"id", "question_id", "language", "text", "model", "comments", "created_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new translation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a translation.
// Returns domain.ErrAlreadyExists if the question already has a translation
// in that language, and a NotFoundError if the question does not exist.
func (r *Repo) Create(ctx context.Context, tr domain.QuestionTranslation) (*domain.QuestionTranslation, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("question_id", "language", "text", "model", "comments").
		Values(tr.QuestionID, tr.Language, tr.Text, postgres.NullJSON(tr.Model), tr.Comments).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create translation: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	created, err := scanTranslation(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, languageConstraint) {
			return nil, fmt.Errorf("question %s language %s: %w", tr.QuestionID, tr.Language, domain.ErrAlreadyExists)
		}
		mapped := postgres.MapError(err, domain.EntityTypeQuestion, tr.QuestionID)
		if errors.Is(mapped, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityTypeQuestion, tr.QuestionID)
		}
		return nil, mapped
	}
	return created, nil
}

// Update applies a partial update. The language is never changed.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TranslationUpdateParams) (*domain.QuestionTranslation, error) {
	upd := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	if params.Text != nil {
		upd = upd.Set("text", *params.Text)
	}
	if params.Model != nil {
		upd = upd.Set("model", postgres.NullJSON(*params.Model))
	}
	if params.Comments != nil {
		upd = upd.Set("comments", postgres.NullString(*params.Comments))
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update translation: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	updated, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTranslation, id)
	}
	return updated, nil
}

// Delete removes a translation by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete translation: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeTranslation, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeTranslation, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a translation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuestionTranslation, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get translation: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	tr, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTranslation, id)
	}
	return tr, nil
}

// ListByQuestion returns all translations of a question ordered by language.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.QuestionTranslation, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"question_id": questionID}).
		OrderBy("language").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list translations: %w", err)
	}

	return r.query(ctx, sql, args...)
}

// GetByQuestionIDs returns the translations in lang of the given questions.
// Questions without such a translation are absent from the result.
func (r *Repo) GetByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID, lang string) ([]domain.QuestionTranslation, error) {
	if len(questionIDs) == 0 {
		return []domain.QuestionTranslation{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("question_id = ANY(?::uuid[])", questionIDs).
		Where(sq.Eq{"language": lang}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get translations: %w", err)
	}

	return r.query(ctx, sql, args...)
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.QuestionTranslation, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	result := []domain.QuestionTranslation{}
	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		result = append(result, *tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanTranslation(row pgx.Row) (*domain.QuestionTranslation, error) {
	var (
		tr    domain.QuestionTranslation
		model []byte
	)
	err := row.Scan(&tr.ID, &tr.QuestionID, &tr.Language, &tr.Text, &model, &tr.Comments, &tr.CreatedAt, &tr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	tr.Model = domain.Value(model)
	return &tr, nil
}
