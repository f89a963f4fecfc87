// Package collection implements the Collection repository using PostgreSQL.
package collection

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

const table = "collections"

var (
	columns = []string{
		"id", "doc_id", "template_id", "date", "location_id", "organisation_id",
		"actor_id", "comments", "created_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new collection repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a collection. ID and DocID are generated by the database.
// A NotFoundError for the template is returned if TemplateID is unknown.
func (r *Repo) Create(ctx context.Context, c domain.Collection) (*domain.Collection, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("template_id", "date", "location_id", "organisation_id", "actor_id", "comments").
		Values(c.TemplateID, c.Date, c.LocationID, c.OrganisationID, c.ActorID, c.Comments).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create collection: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	created, err := scanCollection(row)
	if err != nil {
		if c.TemplateID != nil {
			return nil, postgres.MapError(err, domain.EntityTypeTemplate, *c.TemplateID)
		}
		return nil, postgres.MapError(err, domain.EntityTypeCollection, uuid.Nil)
	}
	return created, nil
}

// Update applies a partial update. The template reference is never changed.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CollectionUpdateParams) (*domain.Collection, error) {
	upd := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	if params.Date != nil {
		upd = upd.Set("date", *params.Date)
	}
	if params.LocationID != nil {
		upd = upd.Set("location_id", *params.LocationID)
	}
	if params.OrganisationID != nil {
		upd = upd.Set("organisation_id", *params.OrganisationID)
	}
	if params.ActorID != nil {
		upd = upd.Set("actor_id", *params.ActorID)
	}
	if params.Comments != nil {
		upd = upd.Set("comments", postgres.NullString(*params.Comments))
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update collection: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	updated, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeCollection, id)
	}
	return updated, nil
}

// Delete removes a collection and, by cascade, all of its slots.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete collection: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeCollection, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeCollection, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a collection by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get collection: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	c, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeCollection, id)
	}
	return c, nil
}

// List returns a page of collections, newest date first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Collection, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("date DESC", "created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list collections: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	result := []domain.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return result, nil
}

// Count returns the total number of collections.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count collections: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count collections: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var c domain.Collection
	err := row.Scan(
		&c.ID, &c.DocID, &c.TemplateID, &c.Date, &c.LocationID, &c.OrganisationID,
		&c.ActorID, &c.Comments, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
