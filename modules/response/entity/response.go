package entity

// Response is one (participant, date, time slot) availability mark. All of a
// participant's rows are replaced wholesale on each submission.
type Response struct {
	ID              int64  `db:"id" json:"id"`
	EventID         string `db:"event_id" json:"eventId"`
	ParticipantName string `db:"participant_name" json:"participantName"`
	Date            string `db:"date" json:"date"`
	TimeSlot        string `db:"time_slot" json:"timeSlot"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
	HasPassword     bool   `db:"has_password" json:"hasPassword"`
}

// ParticipantCredential is the event-scoped password digest of a participant.
// Written at most once; there is no change-password path.
type ParticipantCredential struct {
	EventID         string `db:"event_id" json:"eventId"`
	ParticipantName string `db:"participant_name" json:"participantName"`
	PasswordHash    string `db:"password_hash" json:"-"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
}

// AvailabilityPair is one marked (date, time slot) cell.
type AvailabilityPair struct {
	Date     string
	TimeSlot string
}
