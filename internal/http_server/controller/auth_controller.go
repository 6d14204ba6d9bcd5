// Package controller
package controller

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AuthControllerInterface interface {
	OperatorLogin(ctx echo.Context) error
}

type AuthController struct {
	logger  log.LoggerInterface
	service AuthServiceInterface
}

func NewAuthController(logger log.LoggerInterface, service AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		service: service,
	}
}

func (controller *AuthController) OperatorLogin(ctx echo.Context) error {
	data := &RequestOperatorLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.OperatorLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.OperatorLogin(data).Response(ctx)
}
