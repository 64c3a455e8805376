package service

import (
	"context"

	"meetpoll-api/core/errors"
	"meetpoll-api/core/logger"
	"meetpoll-api/core/utils"
	"meetpoll-api/modules/response/dto"
	"meetpoll-api/modules/response/entity"
	"meetpoll-api/modules/response/repository"
)

// ResponseService handles availability submissions and participant
// authentication.
type ResponseService struct {
	repo repository.ResponseRepositoryInterface
}

// ResponseServiceInterface defines the service contract
type ResponseServiceInterface interface {
	Submit(ctx context.Context, eventID, bearerToken string, req *dto.SubmitResponseRequest) (*dto.SubmitResponseResponse, *errors.AppError)
	ListByEvent(ctx context.Context, eventID string) ([]entity.Response, *errors.AppError)
}

// NewResponseService creates a new response service
func NewResponseService(repo repository.ResponseRepositoryInterface) ResponseServiceInterface {
	return &ResponseService{repo: repo}
}

// Submit runs the per-participant authentication state machine and, for
// non-login requests, replaces the participant's availability wholesale.
//
// Authorization for a submission requires one of:
//   - a valid bearer token bound to this participant and event,
//   - no stored credential (a supplied password becomes the credential),
//   - a matching inline password.
func (s *ResponseService) Submit(ctx context.Context, eventID, bearerToken string, req *dto.SubmitResponseRequest) (*dto.SubmitResponseResponse, *errors.AppError) {
	exists, err := s.repo.EventExists(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}
	if !exists {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	hash, err := s.repo.GetCredentialHash(ctx, eventID, req.ParticipantName)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}
	hasCredential := hash != ""

	if req.Action == dto.ActionLogin {
		return s.login(ctx, eventID, req, hash, hasCredential)
	}

	authorized := false
	if bearerToken != "" {
		if claims, tokenErr := utils.ValidateAndParseToken(bearerToken); tokenErr == nil && claims != nil &&
			claims.ParticipantName == req.ParticipantName && claims.EventID == eventID {
			authorized = true
		}
	}
	if !authorized {
		if !hasCredential {
			authorized = true
			if req.Password != "" {
				if appErr := s.createCredential(ctx, eventID, req.ParticipantName, req.Password); appErr != nil {
					return nil, appErr
				}
				hasCredential = true
			}
		} else if req.Password != "" && utils.ComparePassword(hash, req.Password) {
			authorized = true
		}
	}
	if !authorized {
		return nil, errors.NewAppError(errors.ErrPasswordRequired, "Password required", nil)
	}

	if err := s.repo.ReplaceForParticipant(ctx, eventID, req.ParticipantName, req.Pairs()); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	token, err := utils.GenerateToken(req.ParticipantName, eventID)
	if err != nil {
		// The submission itself succeeded; report it, without session
		// continuity.
		logger.Error("ResponseService:Submit:GenerateToken", err)
		token = ""
	}

	return &dto.SubmitResponseResponse{
		Success:         true,
		Message:         "Availability saved successfully",
		Token:           token,
		ParticipantName: req.ParticipantName,
		HasPassword:     hasCredential,
	}, nil
}

// login verifies (or first sets) the participant credential and issues a
// bearer token. No availability is written.
func (s *ResponseService) login(ctx context.Context, eventID string, req *dto.SubmitResponseRequest, hash string, hasCredential bool) (*dto.SubmitResponseResponse, *errors.AppError) {
	if hasCredential {
		if req.Password == "" {
			return nil, errors.NewAppError(errors.ErrPasswordRequired, "Password required", nil)
		}
		if !utils.ComparePassword(hash, req.Password) {
			return nil, errors.NewAppError(errors.ErrPasswordRequired, "Invalid password", nil)
		}
	} else if req.Password != "" {
		if appErr := s.createCredential(ctx, eventID, req.ParticipantName, req.Password); appErr != nil {
			return nil, appErr
		}
		hasCredential = true
	}

	token, err := utils.GenerateToken(req.ParticipantName, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.SubmitResponseResponse{
		Success:         true,
		Token:           token,
		ParticipantName: req.ParticipantName,
		HasPassword:     hasCredential,
	}, nil
}

func (s *ResponseService) createCredential(ctx context.Context, eventID, participantName, password string) *errors.AppError {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to set password", err)
	}
	if err := s.repo.SetCredential(ctx, eventID, participantName, hashed); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to set password", err)
	}
	return nil
}

// ListByEvent returns every response of the event with its credential flag.
// Reads require no authentication.
func (s *ResponseService) ListByEvent(ctx context.Context, eventID string) ([]entity.Response, *errors.AppError) {
	responses, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get responses", err)
	}
	if responses == nil {
		responses = []entity.Response{}
	}
	return responses, nil
}
