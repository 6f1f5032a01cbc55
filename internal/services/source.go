package services

import (
	"context"

	"hrportal/internal/domain/models"
	"hrportal/internal/table"
)

// Source yields the complete, unfiltered record set of one screen.
type Source[T table.Record] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a plain function, e.g. a method value of the upstream
// client or the fixtures set.
type SourceFunc[T table.Record] func(ctx context.Context) ([]T, error)

func (f SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) { return f(ctx) }

// ReferenceSource loads the lookup lists once at startup.
type ReferenceSource interface {
	ReferenceData(ctx context.Context) (models.ReferenceData, error)
}
