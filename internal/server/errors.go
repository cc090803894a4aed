package server

import "errors"

// errNoServerAddress is returned by [NewServer] when the configuration
// carries no HTTP listen address.
var errNoServerAddress = errors.New("no server address configured")
