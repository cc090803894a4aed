package service

import (
	"context"

	"github.com/gserrano-dev/portfolio-api/internal/adapter"
)

// verifyCaptcha gates a create operation on captcha verification.
//
// Outside production it is a no-op. In production a missing token fails
// with [ErrCaptchaRequired] before any outbound call; an explicit
// rejection by the verifier fails with [ErrCaptchaRejected]; a transport
// or decode failure propagates the adapter error unchanged so handlers
// answer with a server error rather than a client one.
func verifyCaptcha(ctx context.Context, verifier adapter.CaptchaVerifier, production bool, token string) error {
	if !production {
		return nil
	}

	if token == "" {
		return ErrCaptchaRequired
	}

	result, err := verifier.Verify(ctx, token)
	if err != nil {
		return err
	}
	if !result.Success {
		return ErrCaptchaRejected
	}

	return nil
}
