package dto

import "meetpoll-api/modules/event/entity"

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new poll. ID is optional; a short id is
// generated server-side when absent.
type CreateEventRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Creator   string   `json:"creator"`
	Dates     []string `json:"dates"`
	TimeSlots []string `json:"timeSlots"`
}

// ===================== Response DTOs =====================

// CreateEventResponse acknowledges a created poll.
type CreateEventResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// EventDetailResponse is the full poll view: the event record plus its
// candidate dates, time slots and all submitted responses.
type EventDetailResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Creator   string                 `json:"creator,omitempty"`
	CreatedAt string                 `json:"createdAt"`
	Dates     []string               `json:"dates"`
	TimeSlots []string               `json:"timeSlots"`
	Responses []entity.EventResponse `json:"responses"`
}

// ToEventDetailResponse assembles the detail view from its parts.
func ToEventDetailResponse(event *entity.Event, dates, timeSlots []string, responses []entity.EventResponse) *EventDetailResponse {
	resp := &EventDetailResponse{
		ID:        event.ID,
		Name:      event.Name,
		CreatedAt: event.CreatedAt,
		Dates:     dates,
		TimeSlots: timeSlots,
		Responses: responses,
	}
	if event.Creator != nil {
		resp.Creator = *event.Creator
	}
	if resp.Dates == nil {
		resp.Dates = []string{}
	}
	if resp.TimeSlots == nil {
		resp.TimeSlots = []string{}
	}
	if resp.Responses == nil {
		resp.Responses = []entity.EventResponse{}
	}
	return resp
}
