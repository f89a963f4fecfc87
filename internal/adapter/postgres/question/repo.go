// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/datacollect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

const table = "questions"

var (
	columns   = []string{"id", "text", "model", "comments", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new question repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a question. ID and timestamps are generated by the database.
func (r *Repo) Create(ctx context.Context, q domain.Question) (*domain.Question, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("text", "model", "comments").
		Values(q.Text, postgres.NullJSON(q.Model), q.Comments).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create question: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	created, err := scanQuestion(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeQuestion, uuid.Nil)
	}
	return created, nil
}

// Update applies a partial update and returns the updated question.
// An empty params value only bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.QuestionUpdateParams) (*domain.Question, error) {
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
		return nil, fmt.Errorf("build update question: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	updated, err := scanQuestion(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeQuestion, id)
	}
	return updated, nil
}

// Delete removes a question and, by cascade, its translations and template links.
// A question still referenced by answer slots yields domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete question: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeQuestion, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeQuestion, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get question: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	q, err := scanQuestion(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeQuestion, id)
	}
	return q, nil
}

// GetByIDs returns the questions with the given ids in no particular order.
// Unknown ids are skipped. Used by the answer-surface loader.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ANY(?::uuid[])", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get questions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get questions by ids: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Question, 0, len(ids))
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get questions by ids: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		q     domain.Question
		model []byte
	)
	if err := row.Scan(&q.ID, &q.Text, &model, &q.Comments, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	q.Model = domain.Value(model)
	return &q, nil
}
