// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sweep/internal/adapters/config"
	_ "go.trai.ch/sweep/internal/adapters/links"
	_ "go.trai.ch/sweep/internal/adapters/logger"
	_ "go.trai.ch/sweep/internal/adapters/store"
	_ "go.trai.ch/sweep/internal/adapters/transport"
	// Register app nodes.
	_ "go.trai.ch/sweep/internal/app"
)
