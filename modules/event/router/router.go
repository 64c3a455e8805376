package router

import (
	"meetpoll-api/core/middleware"
	"meetpoll-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles poll routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers poll routes. Creation and retrieval are public; polls are
// shared by link.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events")

	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.GET("/:id", r.EventController.GetEvent)
}
