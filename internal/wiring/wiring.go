// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/p2local/internal/adapters/config"
	_ "go.trai.ch/p2local/internal/adapters/lock"
	_ "go.trai.ch/p2local/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/p2local/internal/app"
)
