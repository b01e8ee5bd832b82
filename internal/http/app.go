// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// ModelLoaded reports whether the scoring model artifact was loaded at
	// startup. Exposed on the health endpoint so operators can see when the
	// service runs in degraded (neutral score) mode.
	ModelLoaded bool
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
