// Package server owns the process lifecycle of the HTTP listener:
// binding, running, and graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server
