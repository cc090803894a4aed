package adapter

import "errors"

// ErrCaptchaVerification is returned by [CaptchaVerifier.Verify] when the
// outbound verification call fails at the transport level or the response
// body cannot be decoded. Callers must treat it as a write-blocking
// server-side failure, not as a rejected token.
var ErrCaptchaVerification = errors.New("error verifying captcha")
