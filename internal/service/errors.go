package service

import "errors"

// Validation and captcha sentinel errors. Handlers match against them
// with [errors.Is] and translate them into client-facing envelopes;
// every one of them maps to HTTP 400.
var (
	// ErrCommentFieldsRequired indicates a comment create request with
	// nombre or comentario missing.
	ErrCommentFieldsRequired = errors.New("required fields missing: nombre, comentario")

	// ErrReferenceFieldsRequired indicates a reference create request
	// with any of nombre, titulo, correo, carta missing.
	ErrReferenceFieldsRequired = errors.New("required fields missing: nombre, titulo, correo, carta")

	// ErrNombreTooLong indicates an author name over 100 characters.
	ErrNombreTooLong = errors.New("nombre exceeds 100 characters")

	// ErrComentarioTooLong indicates a comment body over 1000 characters.
	ErrComentarioTooLong = errors.New("comentario exceeds 1000 characters")

	// ErrCartaTooLong indicates a reference letter over 1000 characters.
	ErrCartaTooLong = errors.New("carta exceeds 1000 characters")

	// ErrCaptchaRequired indicates a production create request that
	// carried no captcha token at all.
	ErrCaptchaRequired = errors.New("captcha token required")

	// ErrCaptchaRejected indicates the verifier explicitly declined the
	// supplied token.
	ErrCaptchaRejected = errors.New("captcha token rejected")
)
