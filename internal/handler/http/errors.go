package http

import "errors"

// errInvalidID is returned when the {id} path parameter is not a valid
// integer. It never reaches the store.
var errInvalidID = errors.New("invalid id in path")
