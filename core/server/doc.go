// Package server holds the configuration for the optional read-only HTTP
// surface exposed by the serve command.
package server
