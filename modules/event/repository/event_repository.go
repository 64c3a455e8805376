package repository

import (
	"context"
	"database/sql"
	"time"

	"meetpoll-api/core/database"
	"meetpoll-api/core/logger"
	"meetpoll-api/modules/event/entity"

	"github.com/jmoiron/sqlx"
)

// EventRepository handles poll storage operations.
type EventRepository struct {
	DB database.Database
}

// NewEventRepository creates a new repository instance
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event, dates, timeSlots []string) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetDates(ctx context.Context, eventID string) ([]string, error)
	GetTimeSlots(ctx context.Context, eventID string) ([]string, error)
	GetResponses(ctx context.Context, eventID string) ([]entity.EventResponse, error)
}

// Create persists the event row together with all of its date and time-slot
// rows. All rows commit or none do.
func (r *EventRepository) Create(ctx context.Context, event *entity.Event, dates, timeSlots []string) error {
	event.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	err := r.DB.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO events (id, name, creator, created_at)
			VALUES (?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, query, event.ID, event.Name, event.Creator, event.CreatedAt); err != nil {
			return err
		}

		for _, date := range dates {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO event_dates (event_id, date) VALUES (?, ?)`,
				event.ID, date); err != nil {
				return err
			}
		}

		for _, slot := range timeSlots {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO event_time_slots (event_id, time_slot) VALUES (?, ?)`,
				event.ID, slot); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `
		SELECT id, name, creator, created_at
		FROM events WHERE id = ?
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) GetDates(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT date FROM event_dates WHERE event_id = ?`

	var dates []string
	if err := r.DB.SelectContext(ctx, &dates, query, eventID); err != nil {
		logger.Error("EventRepository:GetDates", err)
		return nil, err
	}
	return dates, nil
}

func (r *EventRepository) GetTimeSlots(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT time_slot FROM event_time_slots WHERE event_id = ?`

	var slots []string
	if err := r.DB.SelectContext(ctx, &slots, query, eventID); err != nil {
		logger.Error("EventRepository:GetTimeSlots", err)
		return nil, err
	}
	return slots, nil
}

// GetResponses returns all response rows of the event, each tagged with
// whether its participant currently holds a credential.
func (r *EventRepository) GetResponses(ctx context.Context, eventID string) ([]entity.EventResponse, error) {
	query := `
		SELECT r.id, r.event_id, r.participant_name, r.date, r.time_slot, r.created_at,
			CASE WHEN pp.password_hash IS NOT NULL THEN 1 ELSE 0 END AS has_password
		FROM responses r
		LEFT JOIN participant_passwords pp
			ON r.event_id = pp.event_id
			AND r.participant_name = pp.participant_name
		WHERE r.event_id = ?
	`

	var responses []entity.EventResponse
	if err := r.DB.SelectContext(ctx, &responses, query, eventID); err != nil {
		logger.Error("EventRepository:GetResponses", err)
		return nil, err
	}
	return responses, nil
}
