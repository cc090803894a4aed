package service

import (
	"context"

	"github.com/gserrano-dev/portfolio-api/internal/adapter"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/store"
	"github.com/gserrano-dev/portfolio-api/models"
)

type commentService struct {
	repo     store.CommentRepository
	verifier adapter.CaptchaVerifier

	production bool

	logger *logger.Logger
}

// NewCommentService constructs a [CommentService]. When production is
// true, create operations require a captcha token and verify it before
// any row is inserted.
func NewCommentService(repo store.CommentRepository, verifier adapter.CaptchaVerifier, production bool, logger *logger.Logger) CommentService {
	logger.Debug().Msg("creating comment service")
	return &commentService{
		repo:       repo,
		verifier:   verifier,
		production: production,
		logger:     logger,
	}
}

func (s *commentService) List(ctx context.Context, req models.ListCommentsRequest) (models.CommentPage, error) {
	return s.repo.List(ctx, req.Page, req.Limit)
}

func (s *commentService) Get(ctx context.Context, id int64) (models.Comment, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the request, then verifies the captcha (production
// only), then inserts. The ordering is a hard contract: a validation
// failure never reaches the verifier or the store.
func (s *commentService) Create(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if req.Nombre == "" || req.Comentario == "" {
		return models.Comment{}, ErrCommentFieldsRequired
	}
	if len([]rune(req.Nombre)) > maxNombreLength {
		return models.Comment{}, ErrNombreTooLong
	}
	if len([]rune(req.Comentario)) > maxBodyLength {
		return models.Comment{}, ErrComentarioTooLong
	}

	if err := verifyCaptcha(ctx, s.verifier, s.production, req.CaptchaToken); err != nil {
		log.Err(err).Str("func", "*commentService.Create").Msg("captcha verification did not pass")
		return models.Comment{}, err
	}

	return s.repo.Create(ctx, req.Nombre, req.Comentario)
}

func (s *commentService) Delete(ctx context.Context, id int64) (models.Comment, error) {
	return s.repo.DeleteByID(ctx, id)
}

func (s *commentService) Stats(ctx context.Context) (models.CommentStats, error) {
	return s.repo.Stats(ctx)
}
