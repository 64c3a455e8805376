package controller

import (
	"meetpoll-api/core/controller"
	"meetpoll-api/core/errors"
	"meetpoll-api/modules/event/dto"
	"meetpoll-api/modules/event/service"
	"meetpoll-api/modules/event/validator"

	"github.com/labstack/echo/v4"
)

// EventController handles poll HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

// NewEventController creates a new controller
func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// CreateEvent handles POST /events
func (c *EventController) CreateEvent(ctx echo.Context) error {
	requestData := new(dto.CreateEventRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateEventRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.InternalServerError(appErr.Code, appErr.Message)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// GetEvent handles GET /events/:id
func (c *EventController) GetEvent(ctx echo.Context) error {
	eventID := ctx.Param("id")

	result, appErr := c.EventService.GetEventByID(ctx.Request().Context(), eventID)
	if appErr != nil {
		if appErr.Code == errors.ErrNotFound {
			return c.NotFound(appErr.Code, appErr.Message)
		}
		return c.InternalServerError(appErr.Code, appErr.Message)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
