package models

// CaptchaResult is the decoded body of the hCaptcha siteverify
// response. Success mirrors the verifier's own success field; a false
// value means the token was explicitly rejected, not that the call
// failed.
type CaptchaResult struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}
