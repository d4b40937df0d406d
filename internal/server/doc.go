// Package server builds the HTTP router shared by both back-office binaries
// and runs it with graceful shutdown.
package server
