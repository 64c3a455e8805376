package controller

import (
	"meetpoll-api/core/constants"
	"meetpoll-api/core/controller"
	"meetpoll-api/core/errors"
	"meetpoll-api/core/utils"
	"meetpoll-api/modules/response/dto"
	"meetpoll-api/modules/response/service"
	"meetpoll-api/modules/response/validator"

	"github.com/labstack/echo/v4"
)

// ResponseController handles availability HTTP requests
type ResponseController struct {
	controller.BaseController
	ResponseService service.ResponseServiceInterface
}

// NewResponseController creates a new controller
func NewResponseController(svc service.ResponseServiceInterface) *ResponseController {
	return &ResponseController{
		BaseController:  controller.NewBaseController(),
		ResponseService: svc,
	}
}

// SubmitResponse handles POST /events/:id/responses
func (c *ResponseController) SubmitResponse(ctx echo.Context) error {
	eventID := ctx.Param("id")

	requestData := new(dto.SubmitResponseRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	// Malformed submissions never reach storage.
	validationResult := validator.ValidateSubmitResponseRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Participant name is required", validationResult)
	}

	// The bearer token is optional here; a password may authorize instead.
	bearerToken, _ := utils.GetTokenFromHeader(ctx)

	result, appErr := c.ResponseService.Submit(ctx.Request().Context(), eventID, bearerToken, requestData)
	if appErr != nil {
		switch appErr.Code {
		case errors.ErrNotFound:
			return c.NotFound(appErr.Code, appErr.Message)
		case errors.ErrPasswordRequired, errors.ErrUnauthorized:
			return c.Unauthorized(appErr.Code, appErr.Message)
		default:
			return c.InternalServerError(appErr.Code, appErr.Message)
		}
	}

	message := "Availability saved successfully"
	if requestData.Action == dto.ActionLogin {
		message = "Login successful"
	}
	return c.SuccessResponse(ctx, result, message)
}

// GetResponses handles GET /events/:id/responses
func (c *ResponseController) GetResponses(ctx echo.Context) error {
	eventID := ctx.Param("id")

	result, appErr := c.ResponseService.ListByEvent(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.InternalServerError(appErr.Code, appErr.Message)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// VerifyToken handles POST /events/:id/verify. AuthMiddleware has already
// validated the bearer token and stored its claims.
func (c *ResponseController) VerifyToken(ctx echo.Context) error {
	eventID := ctx.Param("id")

	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token")
	}

	// A token issued for another event does not verify here.
	if claims.EventID != eventID {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token")
	}

	return c.SuccessResponse(ctx, &dto.VerifyResponse{
		Success:         true,
		ParticipantName: claims.ParticipantName,
	}, "Token verified")
}
