package dto

import "meetpoll-api/modules/response/entity"

// ActionLogin asks for credential verification only; no availability is
// written.
const ActionLogin = "login"

// ===================== Request DTOs =====================

// SubmitResponseRequest carries a participant's full availability map:
// date -> time slot -> marked. Truthy cells replace all prior rows of the
// participant.
type SubmitResponseRequest struct {
	ParticipantName string                     `json:"participantName"`
	Availability    map[string]map[string]bool `json:"availability"`
	Password        string                     `json:"password"`
	Action          string                     `json:"action"`
}

// ===================== Response DTOs =====================

// SubmitResponseResponse acknowledges a login or submission. Token is issued
// on every successful authorization for session continuity.
type SubmitResponseResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	Token           string `json:"token,omitempty"`
	ParticipantName string `json:"participantName"`
	HasPassword     bool   `json:"hasPassword"`
}

// VerifyResponse confirms a bearer token for an event.
type VerifyResponse struct {
	Success         bool   `json:"success"`
	ParticipantName string `json:"participantName"`
}

// Pairs flattens the availability map to its truthy (date, time slot) cells.
func (r *SubmitResponseRequest) Pairs() []entity.AvailabilityPair {
	pairs := make([]entity.AvailabilityPair, 0)
	for date, slots := range r.Availability {
		for slot, marked := range slots {
			if marked {
				pairs = append(pairs, entity.AvailabilityPair{Date: date, TimeSlot: slot})
			}
		}
	}
	return pairs
}
