// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gabriel Serrano

// Package adapter provides outbound integrations with external services.
//
// The only integration today is [CaptchaVerifier], which submits a
// client-supplied hCaptcha token to the siteverify endpoint and reports
// whether the verifier accepted it. The HTTP implementation
// ([NewHCaptchaVerifier]) short-circuits in development so local runs
// never need real captcha credentials.
//
// [ErrCaptchaVerification] marks transport or decode failures; an
// explicit rejection by the verifier is NOT an error; it is reported
// through the result's Success field.
package adapter

import (
	"context"

	"github.com/gserrano-dev/portfolio-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/captcha_verifier_mock.go -package=mock

// CaptchaVerifier validates a captcha response token with the external
// verification service.
type CaptchaVerifier interface {
	// Verify submits token to the verifier and returns the decoded
	// result. The call is synchronous from the caller's perspective and
	// always completes before any dependent write proceeds.
	//
	// Returns [ErrCaptchaVerification] (wrapped) if the outbound call
	// fails or the response body is not parseable JSON. A result with
	// Success=false means the verifier explicitly declined the token.
	Verify(ctx context.Context, token string) (models.CaptchaResult, error)
}
