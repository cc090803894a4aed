package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gserrano-dev/portfolio-api/internal/config"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/utils"
	"github.com/gserrano-dev/portfolio-api/models"
)

// siteverifyURL is the hCaptcha verification endpoint.
const siteverifyURL = "https://api.hcaptcha.com/siteverify"

type hcaptchaVerifier struct {
	client *utils.HTTPClient

	secret     string
	production bool
	verifyURL  string

	logger *logger.Logger
}

// NewHCaptchaVerifier constructs the hCaptcha implementation of
// [CaptchaVerifier].
//
// Outside production, or when the secret is empty or still carries the
// "ES_" placeholder marker from the example env file, Verify
// short-circuits and accepts every token without a network call.
func NewHCaptchaVerifier(cfg config.App, timeout time.Duration, logger *logger.Logger) CaptchaVerifier {
	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &hcaptchaVerifier{
		client:     client,
		secret:     cfg.HCaptchaSecret,
		production: cfg.Environment == config.EnvProduction,
		verifyURL:  siteverifyURL,
		logger:     logger,
	}
}

// Verify implements [CaptchaVerifier]. It POSTs the secret and the token
// URL-form-encoded to the siteverify endpoint and decodes the JSON
// response. No retries: a single failure is terminal for the request.
func (v *hcaptchaVerifier) Verify(ctx context.Context, token string) (models.CaptchaResult, error) {
	log := logger.FromContext(ctx)

	if !v.production || v.secret == "" || strings.Contains(v.secret, "ES_") {
		log.Debug().Str("func", "*hcaptchaVerifier.Verify").Msg("development mode: captcha verification bypassed")
		return models.CaptchaResult{
			Success:     true,
			ChallengeTS: time.Now().UTC().Format(time.RFC3339),
			Hostname:    "localhost",
		}, nil
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   v.secret,
			"response": token,
		}).
		Post(v.verifyURL)
	if err != nil {
		log.Err(err).Str("func", "*hcaptchaVerifier.Verify").Msg("captcha verification request failed")
		return models.CaptchaResult{}, fmt.Errorf("%w: %w", ErrCaptchaVerification, err)
	}

	var result models.CaptchaResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Err(err).Str("func", "*hcaptchaVerifier.Verify").Int("status", resp.StatusCode()).Msg("captcha response is not valid JSON")
		return models.CaptchaResult{}, fmt.Errorf("%w: %w", ErrCaptchaVerification, err)
	}

	if !result.Success {
		log.Info().Strs("error_codes", result.ErrorCodes).Msg("captcha token rejected by verifier")
	}

	return result, nil
}
