package validator

import (
	"strings"

	"meetpoll-api/core/controller"
	"meetpoll-api/modules/event/dto"
)

// ValidateCreateEventRequest checks the creation payload before any storage
// call is made.
func ValidateCreateEventRequest(req *dto.CreateEventRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if strings.TrimSpace(req.Name) == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "Event name is required"))
	}
	if len(req.Dates) == 0 {
		result.Errors = append(result.Errors, controller.NewValidationError("dates", "At least one date is required"))
	}
	for _, d := range req.Dates {
		if strings.TrimSpace(d) == "" {
			result.Errors = append(result.Errors, controller.NewValidationError("dates", "Dates must not be blank"))
			break
		}
	}
	if len(req.TimeSlots) == 0 {
		result.Errors = append(result.Errors, controller.NewValidationError("timeSlots", "At least one time slot is required"))
	}
	for _, ts := range req.TimeSlots {
		if strings.TrimSpace(ts) == "" {
			result.Errors = append(result.Errors, controller.NewValidationError("timeSlots", "Time slots must not be blank"))
			break
		}
	}

	if result.HasError() {
		result.Message = "Invalid event payload"
	} else {
		result.Success = true
	}
	return result
}
