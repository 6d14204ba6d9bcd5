// Package http_server 运营报表API服务器
package http_server

import (
	"context"
	"errors"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/http_server/controller"
	mid "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/http_server/middleware"
	impl "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/http_server/service"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent, snapshot *school.Snapshot) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.RateLimitDuration,
		httpConfig.RateLimit,
	)
	cleanupInterval := httpConfig.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	snapshotOperation := applicationContent.Operations().SnapshotOperation()

	authService := impl.NewAuthService(logger, httpConfig)
	snapshotService := impl.NewSnapshotService(logger, snapshot, snapshotOperation)

	authController := controller.NewAuthController(logger, authService)
	snapshotController := controller.NewSnapshotController(logger, snapshotService)

	apiGroup := e.Group("/api")
	apiGroup.POST("/sessions", authController.OperatorLogin)
	apiGroup.GET("/snapshot", snapshotController.GetSnapshot, jwtMiddleware)

	runGroup := apiGroup.Group("/runs")
	runGroup.GET("", snapshotController.GetRuns, jwtMiddleware)
	runGroup.GET("/:id", snapshotController.GetRunDetail, jwtMiddleware)
	runGroup.GET("/:id/warnings", snapshotController.GetRunWarnings, jwtMiddleware)

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	logger.InfoF("Starting report api server on %s", httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v", httpConfig.RateLimit, httpConfig.RateLimitDuration)

	if err := e.Start(httpConfig.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Report api server error: %v", err)
	}
}
