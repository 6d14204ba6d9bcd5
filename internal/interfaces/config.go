// Package interfaces
package interfaces

import (
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
