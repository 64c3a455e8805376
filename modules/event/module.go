package event

import (
	"meetpoll-api/core/database"
	"meetpoll-api/core/middleware"
	"meetpoll-api/modules/event/controller"
	"meetpoll-api/modules/event/repository"
	"meetpoll-api/modules/event/router"
	"meetpoll-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
