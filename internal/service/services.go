package service

import (
	"github.com/gserrano-dev/portfolio-api/internal/adapter"
	"github.com/gserrano-dev/portfolio-api/internal/config"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/store"
)

// Field length limits enforced on create operations. Titulo and correo
// carry no limit; only names and free-text bodies are capped.
const (
	maxNombreLength = 100
	maxBodyLength   = 1000
)

// Services bundles the business-logic services injected into the HTTP
// handler.
type Services struct {
	CommentService   CommentService
	ReferenceService ReferenceService
}

// NewServices constructs all services on top of the shared repositories
// and the captcha verifier.
func NewServices(repos *store.Repositories, verifier adapter.CaptchaVerifier, cfg config.App, logger *logger.Logger) *Services {
	production := cfg.Environment == config.EnvProduction

	return &Services{
		CommentService:   NewCommentService(repos.Comments, verifier, production, logger),
		ReferenceService: NewReferenceService(repos.References, verifier, production, logger),
	}
}
