// Package interfaces
package interfaces

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
