package response

import (
	"meetpoll-api/core/database"
	"meetpoll-api/core/middleware"
	"meetpoll-api/modules/response/controller"
	"meetpoll-api/modules/response/repository"
	"meetpoll-api/modules/response/router"
	"meetpoll-api/modules/response/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the response module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewResponseRepository(db)
	svc := service.NewResponseService(repo)
	ctrl := controller.NewResponseController(svc)
	rtr := router.NewResponseRouter(ctrl)

	rtr.Setup(e, mw)
}
