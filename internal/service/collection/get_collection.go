package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// GetCollection returns a collection by ID.
func (s *Service) GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}
	return s.collections.GetByID(ctx, collectionID)
}

// ListCollections returns one page of collections, newest date first.
func (s *Service) ListCollections(ctx context.Context, input ListCollectionsInput) (*ListResult, error) {
	limit, err := s.pageSize(input.Limit)
	if err != nil {
		return nil, err
	}
	if input.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}

	items, err := s.collections.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	total, err := s.collections.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}

	return &ListResult{Items: items, Total: total}, nil
}

// History returns the audit trail of a collection, newest first.
func (s *Service) History(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}
	limit, err := s.pageSize(limit)
	if err != nil {
		return nil, err
	}

	if _, err := s.collections.GetByID(ctx, collectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	return s.audit.GetByEntity(ctx, domain.EntityTypeCollection, collectionID, limit)
}

func (s *Service) pageSize(limit int) (int, error) {
	if limit == 0 {
		return s.cfg.DefaultPageSize, nil
	}
	if limit < 0 || limit > s.cfg.MaxPageSize {
		return 0, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", s.cfg.MaxPageSize))
	}
	return limit, nil
}
