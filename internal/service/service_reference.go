package service

import (
	"context"

	"github.com/gserrano-dev/portfolio-api/internal/adapter"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/store"
	"github.com/gserrano-dev/portfolio-api/models"
)

type referenceService struct {
	repo     store.ReferenceRepository
	verifier adapter.CaptchaVerifier

	production bool

	logger *logger.Logger
}

// NewReferenceService constructs a [ReferenceService].
func NewReferenceService(repo store.ReferenceRepository, verifier adapter.CaptchaVerifier, production bool, logger *logger.Logger) ReferenceService {
	logger.Debug().Msg("creating reference service")
	return &referenceService{
		repo:       repo,
		verifier:   verifier,
		production: production,
		logger:     logger,
	}
}

func (s *referenceService) List(ctx context.Context) ([]models.Referencia, error) {
	return s.repo.List(ctx)
}

func (s *referenceService) Get(ctx context.Context, id int64) (models.Referencia, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates, verifies the captcha in production, then inserts.
// Titulo and correo are required but have no length cap.
func (s *referenceService) Create(ctx context.Context, req models.CreateReferenceRequest) (models.Referencia, error) {
	log := logger.FromContext(ctx)

	if req.Nombre == "" || req.Titulo == "" || req.Correo == "" || req.Carta == "" {
		return models.Referencia{}, ErrReferenceFieldsRequired
	}
	if len([]rune(req.Nombre)) > maxNombreLength {
		return models.Referencia{}, ErrNombreTooLong
	}
	if len([]rune(req.Carta)) > maxBodyLength {
		return models.Referencia{}, ErrCartaTooLong
	}

	if err := verifyCaptcha(ctx, s.verifier, s.production, req.CaptchaToken); err != nil {
		log.Err(err).Str("func", "*referenceService.Create").Msg("captcha verification did not pass")
		return models.Referencia{}, err
	}

	return s.repo.Create(ctx, req.Nombre, req.Titulo, req.Correo, req.Carta)
}
