package router

import (
	"meetpoll-api/core/middleware"
	"meetpoll-api/modules/response/controller"

	"github.com/labstack/echo/v4"
)

// ResponseRouter handles availability routes
type ResponseRouter struct {
	ResponseController *controller.ResponseController
}

// NewResponseRouter creates a new router
func NewResponseRouter(responseController *controller.ResponseController) *ResponseRouter {
	return &ResponseRouter{
		ResponseController: responseController,
	}
}

// Setup registers availability routes. Submission auth happens inside the
// handler (token or password); only verify requires a bearer token up front.
func (r *ResponseRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events")

	eventRoutes.POST("/:id/responses", r.ResponseController.SubmitResponse)
	eventRoutes.GET("/:id/responses", r.ResponseController.GetResponses)
	eventRoutes.POST("/:id/verify", r.ResponseController.VerifyToken, mw.AuthMiddleware())
}
