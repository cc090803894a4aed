// Package http implements the inbound HTTP surface of the portfolio
// API: the chi router, one handler file per resource, the middleware
// suite (trace IDs, request logging, security headers, CORS), and the
// mapping from layer sentinel errors to HTTP statuses and user-safe
// Spanish messages.
//
// Every endpoint answers with the uniform envelope defined in
// [models.Response]: success responses carry message/data, error
// responses carry a client-safe error string. Internal detail (query
// text, driver errors) is logged with request context but never
// included in a client-visible payload.
package http
