// Package template implements the Template repository using PostgreSQL,
// including the ordered template_questions link table.
package template

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

const (
	table     = "templates"
	linkTable = "template_questions"
)

var (
	columns   = []string{"id", "name", "public", "comments", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ") + ", " + questionCount

	linkColumns = []string{"id", "template_id", "question_id", "position", "created_at"}
)

// questionCount is selected alongside template columns.
const questionCount = "(SELECT count(*) FROM template_questions tq WHERE tq.template_id = templates.id) AS question_count"

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new template repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Template CRUD
// ---------------------------------------------------------------------------

// Create inserts a template with no questions.
func (r *Repo) Create(ctx context.Context, t domain.Template) (*domain.Template, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "public", "comments").
		Values(t.Name, t.Public, t.Comments).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create template: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	created, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTemplate, uuid.Nil)
	}
	return created, nil
}

// Update applies a partial update.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TemplateUpdateParams) (*domain.Template, error) {
	upd := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	if params.Name != nil {
		upd = upd.Set("name", *params.Name)
	}
	if params.Public != nil {
		upd = upd.Set("public", *params.Public)
	}
	if params.Comments != nil {
		upd = upd.Set("comments", postgres.NullString(*params.Comments))
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update template: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	updated, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTemplate, id)
	}
	return updated, nil
}

// Delete removes a template and its question links.
// Collections created from it keep their slots; their template_id becomes NULL.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete template: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeTemplate, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeTemplate, id)
	}
	return nil
}

// GetByID returns a template with its question count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		Column(questionCount).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get template: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	t, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeTemplate, id)
	}
	return t, nil
}

// List returns templates ordered by name. With publicOnly only public
// templates are returned.
func (r *Repo) List(ctx context.Context, publicOnly bool) ([]domain.Template, error) {
	sel := postgres.Builder().
		Select(columns...).
		Column(questionCount).
		From(table).
		OrderBy("name", "id")
	if publicOnly {
		sel = sel.Where(sq.Eq{"public": true})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list templates: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	result := []domain.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Question links
// ---------------------------------------------------------------------------

// AttachQuestion links a question to a template after all existing links.
// Attaching an already linked question is a no-op and reports false.
func (r *Repo) AttachQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(linkTable).
		Columns("template_id", "question_id").
		Values(templateID, questionID).
		Suffix("ON CONFLICT (template_id, question_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build attach template question: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, domain.EntityTypeTemplate, templateID)
	}
	return tag.RowsAffected() > 0, nil
}

// DetachQuestion unlinks a question from a template and reports whether a
// link existed. Existing collections are not affected.
func (r *Repo) DetachQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Delete(linkTable).
		Where(sq.Eq{"template_id": templateID, "question_id": questionID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build detach template question: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, domain.EntityTypeTemplate, templateID)
	}
	return tag.RowsAffected() > 0, nil
}

// ListQuestions returns the links of a template in attachment order.
func (r *Repo) ListQuestions(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateQuestion, error) {
	sql, args, err := postgres.Builder().
		Select(linkColumns...).
		From(linkTable).
		Where(sq.Eq{"template_id": templateID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list template questions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list template questions: %w", err)
	}
	defer rows.Close()

	result := []domain.TemplateQuestion{}
	for rows.Next() {
		var tq domain.TemplateQuestion
		if err := rows.Scan(&tq.ID, &tq.TemplateID, &tq.QuestionID, &tq.Position, &tq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan template question: %w", err)
		}
		result = append(result, tq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list template questions: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var t domain.Template
	if err := row.Scan(&t.ID, &t.Name, &t.Public, &t.Comments, &t.CreatedAt, &t.UpdatedAt, &t.QuestionCount); err != nil {
		return nil, err
	}
	return &t, nil
}
