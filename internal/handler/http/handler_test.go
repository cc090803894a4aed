package http

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/service"
	"github.com/gserrano-dev/portfolio-api/models"
)

// mockCommentService implements service.CommentService with overridable
// function fields. Unset fields return zero values.
type mockCommentService struct {
	listFn   func(ctx context.Context, req models.ListCommentsRequest) (models.CommentPage, error)
	getFn    func(ctx context.Context, id int64) (models.Comment, error)
	createFn func(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error)
	deleteFn func(ctx context.Context, id int64) (models.Comment, error)
	statsFn  func(ctx context.Context) (models.CommentStats, error)
}

func (m *mockCommentService) List(ctx context.Context, req models.ListCommentsRequest) (models.CommentPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return models.CommentPage{Comments: []models.Comment{}}, nil
}

func (m *mockCommentService) Get(ctx context.Context, id int64) (models.Comment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) Create(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) Delete(ctx context.Context, id int64) (models.Comment, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) Stats(ctx context.Context) (models.CommentStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.CommentStats{}, nil
}

// mockReferenceService implements service.ReferenceService the same way.
type mockReferenceService struct {
	listFn   func(ctx context.Context) ([]models.Referencia, error)
	getFn    func(ctx context.Context, id int64) (models.Referencia, error)
	createFn func(ctx context.Context, req models.CreateReferenceRequest) (models.Referencia, error)
}

func (m *mockReferenceService) List(ctx context.Context) ([]models.Referencia, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Referencia{}, nil
}

func (m *mockReferenceService) Get(ctx context.Context, id int64) (models.Referencia, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Referencia{}, nil
}

func (m *mockReferenceService) Create(ctx context.Context, req models.CreateReferenceRequest) (models.Referencia, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Referencia{}, nil
}

// newTestRouter wires the mocks into a full router so tests exercise
// the same middleware chain and route table as production.
func newTestRouter(comments service.CommentService, references service.ReferenceService) *chi.Mux {
	h := &Handler{
		services: &service.Services{
			CommentService:   comments,
			ReferenceService: references,
		},
		environment: "development",
		version:     "1.0.0",
		corsOrigin:  "http://localhost:3000",
		started:     time.Now(),
		logger:      logger.Nop(),
	}
	return h.Init()
}
