package models

// CreateCommentRequest is the body of POST /api/comments.
type CreateCommentRequest struct {
	// Nombre is required, at most 100 characters.
	Nombre string `json:"nombre"`

	// Comentario is required, at most 1000 characters.
	Comentario string `json:"comentario"`

	// CaptchaToken is the hCaptcha response token. Optional in
	// development; required in production, where it is verified before
	// the row is inserted.
	CaptchaToken string `json:"captchaToken,omitempty"`
}

// CreateReferenceRequest is the body of POST /api/referencias.
type CreateReferenceRequest struct {
	// Nombre is required, at most 100 characters.
	Nombre string `json:"nombre"`

	// Titulo is required. No maximum length is enforced.
	Titulo string `json:"titulo"`

	// Correo is required. Format is not validated server-side.
	Correo string `json:"correo"`

	// Carta is required, at most 1000 characters.
	Carta string `json:"carta"`

	// CaptchaToken is the hCaptcha response token, verified only in
	// production.
	CaptchaToken string `json:"captchaToken,omitempty"`
}

// ListCommentsRequest carries the normalised pagination parameters for
// the comment list. Handlers fill it from query parameters, falling back
// to the defaults when a value is missing or not numeric.
type ListCommentsRequest struct {
	Page  int
	Limit int
}
