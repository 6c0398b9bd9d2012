package app

import (
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
)

// Components contains all the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
}
