package entity

// Event represents a scheduling poll. Events are immutable once created.
type Event struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Creator   *string `db:"creator" json:"creator,omitempty"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

// EventDate is one candidate date of an event.
type EventDate struct {
	ID      int64  `db:"id" json:"id"`
	EventID string `db:"event_id" json:"eventId"`
	Date    string `db:"date" json:"date"`
}

// EventTimeSlot is one candidate time-of-day slot of an event.
type EventTimeSlot struct {
	ID       int64  `db:"id" json:"id"`
	EventID  string `db:"event_id" json:"eventId"`
	TimeSlot string `db:"time_slot" json:"timeSlot"`
}

// EventResponse is a response row as embedded in the event detail view,
// annotated with whether the participant holds a credential.
type EventResponse struct {
	ID              int64  `db:"id" json:"id"`
	EventID         string `db:"event_id" json:"eventId"`
	ParticipantName string `db:"participant_name" json:"participantName"`
	Date            string `db:"date" json:"date"`
	TimeSlot        string `db:"time_slot" json:"timeSlot"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
	HasPassword     bool   `db:"has_password" json:"hasPassword"`
}
