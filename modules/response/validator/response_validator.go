package validator

import (
	"strings"

	"meetpoll-api/core/controller"
	"meetpoll-api/modules/response/dto"
)

// ValidateSubmitResponseRequest rejects malformed submissions before any
// storage call is made.
func ValidateSubmitResponseRequest(req *dto.SubmitResponseRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if strings.TrimSpace(req.ParticipantName) == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("participantName", "Participant name is required"))
	}

	if result.HasError() {
		result.Message = "Invalid submission payload"
	} else {
		result.Success = true
	}
	return result
}
