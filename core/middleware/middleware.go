package middleware

import (
	"net/http"
	"time"

	"meetpoll-api/core/config"
	"meetpoll-api/core/constants"
	"meetpoll-api/core/controller"
	"meetpoll-api/core/errors"
	"meetpoll-api/core/logger"
	"meetpoll-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Middleware struct {
	cfg *config.Config
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

func (m *Middleware) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}

func (m *Middleware) CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: m.cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	})
}

// RequestLogger tags every request with a request id and logs method, path,
// status and latency on completion.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Set(constants.ContextRequestID, requestID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				"request_id", requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

// AuthMiddleware requires a valid bearer token and stores its claims in the
// request context under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized,
					controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "No token provided"))
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized,
					controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid token"))
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
