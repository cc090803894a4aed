package store

import (
	"context"

	"github.com/gserrano-dev/portfolio-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// CommentRepository is the data-access contract for the "comentarios"
// table. All queries use bound parameters; absent rows surface as
// [ErrCommentNotFound], never as empty structs.
type CommentRepository interface {
	// List returns one page of comments ordered by fecha descending,
	// together with the total row count and the derived page count.
	// page is 1-based; the query skips (page-1)*limit rows. Requesting a
	// page past the end yields an empty page, not an error.
	List(ctx context.Context, page, limit int) (models.CommentPage, error)

	// GetByID returns the comment with the given id or
	// [ErrCommentNotFound].
	GetByID(ctx context.Context, id int64) (models.Comment, error)

	// Create inserts a row and returns it with the store-assigned id
	// and fecha.
	Create(ctx context.Context, nombre, comentario string) (models.Comment, error)

	// DeleteByID hard-deletes the row with the given id and returns the
	// deleted comment, or [ErrCommentNotFound] when no row matched.
	DeleteByID(ctx context.Context, id int64) (models.Comment, error)

	// Stats returns the total count plus earliest and latest fecha.
	// The min/max fields are nil when the table is empty.
	Stats(ctx context.Context) (models.CommentStats, error)
}

// ReferenceRepository is the data-access contract for the "referencias"
// table. The entity has no delete or stats operations.
type ReferenceRepository interface {
	// List returns every reference ordered by fecha descending.
	List(ctx context.Context) ([]models.Referencia, error)

	// GetByID returns the reference with the given id or
	// [ErrReferenceNotFound].
	GetByID(ctx context.Context, id int64) (models.Referencia, error)

	// Create inserts a row and returns it with the store-assigned id
	// and fecha.
	Create(ctx context.Context, nombre, titulo, correo, carta string) (models.Referencia, error)
}
