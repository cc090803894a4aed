package service

import (
	"context"

	"github.com/gserrano-dev/portfolio-api/models"
)

// CommentService owns the comment lifecycle: validation, captcha gating
// on writes, and delegation to the comment repository.
type CommentService interface {
	// List returns one page of comments plus pagination totals. The
	// request is assumed normalised (positive page and limit).
	List(ctx context.Context, req models.ListCommentsRequest) (models.CommentPage, error)

	// Get returns a single comment or store.ErrCommentNotFound.
	Get(ctx context.Context, id int64) (models.Comment, error)

	// Create validates the request, verifies the captcha token when
	// running in production, and inserts the row. Validation failures
	// return before any store or verifier call is made.
	Create(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error)

	// Delete removes a comment and returns the deleted row, or
	// store.ErrCommentNotFound.
	Delete(ctx context.Context, id int64) (models.Comment, error)

	// Stats returns aggregate comment numbers. Also used by the health
	// check as a store liveness probe.
	Stats(ctx context.Context) (models.CommentStats, error)
}

// ReferenceService owns the reference (testimonial) lifecycle. No delete
// or stats operations exist for this entity.
type ReferenceService interface {
	// List returns every reference, newest first.
	List(ctx context.Context) ([]models.Referencia, error)

	// Get returns a single reference or store.ErrReferenceNotFound.
	Get(ctx context.Context, id int64) (models.Referencia, error)

	// Create validates the request, verifies the captcha token when
	// running in production, and inserts the row.
	Create(ctx context.Context, req models.CreateReferenceRequest) (models.Referencia, error)
}
