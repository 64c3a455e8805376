package repository

import (
	"context"
	"database/sql"
	"time"

	"meetpoll-api/core/database"
	"meetpoll-api/core/logger"
	"meetpoll-api/modules/response/entity"

	"github.com/jmoiron/sqlx"
)

// ResponseRepository handles availability and credential storage operations.
type ResponseRepository struct {
	DB database.Database
}

// NewResponseRepository creates a new repository instance
func NewResponseRepository(db database.Database) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// ResponseRepositoryInterface defines the repository contract
type ResponseRepositoryInterface interface {
	EventExists(ctx context.Context, eventID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]entity.Response, error)
	ReplaceForParticipant(ctx context.Context, eventID, participantName string, pairs []entity.AvailabilityPair) error
	GetCredentialHash(ctx context.Context, eventID, participantName string) (string, error)
	HasCredential(ctx context.Context, eventID, participantName string) (bool, error)
	SetCredential(ctx context.Context, eventID, participantName, passwordHash string) error
}

func (r *ResponseRepository) EventExists(ctx context.Context, eventID string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM events WHERE id = ?`, eventID)
	if err != nil {
		logger.Error("ResponseRepository:EventExists", err)
		return false, err
	}
	return count > 0, nil
}

// ListByEvent returns every response row of the event, each tagged with
// whether its participant holds a credential.
func (r *ResponseRepository) ListByEvent(ctx context.Context, eventID string) ([]entity.Response, error) {
	query := `
		SELECT r.id, r.event_id, r.participant_name, r.date, r.time_slot, r.created_at,
			CASE WHEN pp.password_hash IS NOT NULL THEN 1 ELSE 0 END AS has_password
		FROM responses r
		LEFT JOIN participant_passwords pp
			ON r.event_id = pp.event_id
			AND r.participant_name = pp.participant_name
		WHERE r.event_id = ?
	`

	var responses []entity.Response
	if err := r.DB.SelectContext(ctx, &responses, query, eventID); err != nil {
		logger.Error("ResponseRepository:ListByEvent", err)
		return nil, err
	}
	return responses, nil
}

// ReplaceForParticipant deletes all prior rows of (event, participant) and
// inserts one row per marked pair, atomically. A concurrent reader never sees
// a half-replaced set.
func (r *ResponseRepository) ReplaceForParticipant(ctx context.Context, eventID, participantName string, pairs []entity.AvailabilityPair) error {
	createdAt := time.Now().UTC().Format(time.RFC3339)

	err := r.DB.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM responses WHERE event_id = ? AND participant_name = ?`,
			eventID, participantName); err != nil {
			return err
		}

		for _, pair := range pairs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO responses (event_id, participant_name, date, time_slot, created_at)
				 VALUES (?, ?, ?, ?, ?)`,
				eventID, participantName, pair.Date, pair.TimeSlot, createdAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("ResponseRepository:ReplaceForParticipant", err)
		return err
	}
	return nil
}

// GetCredentialHash returns the stored digest, or "" when the participant has
// no credential.
func (r *ResponseRepository) GetCredentialHash(ctx context.Context, eventID, participantName string) (string, error) {
	query := `
		SELECT password_hash
		FROM participant_passwords
		WHERE event_id = ? AND participant_name = ?
	`

	var hash string
	err := r.DB.GetContext(ctx, &hash, query, eventID, participantName)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		logger.Error("ResponseRepository:GetCredentialHash", err)
		return "", err
	}
	return hash, nil
}

func (r *ResponseRepository) HasCredential(ctx context.Context, eventID, participantName string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM participant_passwords WHERE event_id = ? AND participant_name = ?`,
		eventID, participantName)
	if err != nil {
		logger.Error("ResponseRepository:HasCredential", err)
		return false, err
	}
	return count > 0, nil
}

// SetCredential stores a participant's digest. First write wins: the primary
// key on (event_id, participant_name) rejects a second write.
func (r *ResponseRepository) SetCredential(ctx context.Context, eventID, participantName, passwordHash string) error {
	createdAt := time.Now().UTC().Format(time.RFC3339)

	err := r.DB.ExecContext(ctx,
		`INSERT INTO participant_passwords (event_id, participant_name, password_hash, created_at)
		 VALUES (?, ?, ?, ?)`,
		eventID, participantName, passwordHash, createdAt)
	if err != nil {
		logger.Error("ResponseRepository:SetCredential", err)
		return err
	}
	return nil
}
