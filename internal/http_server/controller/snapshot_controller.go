// Package controller
package controller

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type SnapshotControllerInterface interface {
	GetSnapshot(ctx echo.Context) error
	GetRuns(ctx echo.Context) error
	GetRunDetail(ctx echo.Context) error
	GetRunWarnings(ctx echo.Context) error
}

type SnapshotController struct {
	logger  log.LoggerInterface
	service SnapshotServiceInterface
}

func NewSnapshotController(logger log.LoggerInterface, service SnapshotServiceInterface) *SnapshotController {
	return &SnapshotController{
		logger:  logger,
		service: service,
	}
}

func (controller *SnapshotController) GetSnapshot(ctx echo.Context) error {
	return controller.service.CurrentSnapshot(&RequestCurrentSnapshot{}).Response(ctx)
}

func (controller *SnapshotController) GetRuns(ctx echo.Context) error {
	data := &RequestGetRuns{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("SnapshotController.GetRuns bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetRuns(data).Response(ctx)
}

func (controller *SnapshotController) GetRunDetail(ctx echo.Context) error {
	data := &RequestRunDetail{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("SnapshotController.GetRunDetail bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetRunDetail(data).Response(ctx)
}

func (controller *SnapshotController) GetRunWarnings(ctx echo.Context) error {
	data := &RequestRunWarnings{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("SnapshotController.GetRunWarnings bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetRunWarnings(data).Response(ctx)
}
