package utils

import (
	"strings"
	"sync"
	"time"

	"meetpoll-api/core/config"
	"meetpoll-api/core/errors"
	"meetpoll-api/core/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenClaims binds a participant to a single event for the validity window.
type TokenClaims struct {
	ParticipantName string `json:"participantName"`
	EventID         string `json:"eventId"`
	jwt.RegisteredClaims
}

var (
	secretOnce sync.Once
	secret     []byte
)

func signingSecret() []byte {
	secretOnce.Do(func() {
		s := config.Get().JWTSecret
		if s == "" {
			// Ephemeral secret: fine for development, tokens will not
			// survive a restart. Set JWT_SECRET in production.
			s = GenerateRandomString(32)
			logger.Warn("JWT_SECRET not set, using an ephemeral signing secret")
		}
		secret = []byte(s)
	})
	return secret
}

// GenerateToken issues a signed bearer token for (participantName, eventID).
func GenerateToken(participantName, eventID string) (string, error) {
	expiry := time.Duration(config.Get().TokenExpiryHours) * time.Hour
	claims := TokenClaims{
		ParticipantName: participantName,
		EventID:         eventID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// ValidateAndParseToken returns the embedded claims, or nil for any expired,
// tampered or otherwise invalid token. It never panics.
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "unexpected signing method", nil)
		}
		return signingSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", nil)
	}
	return claims, nil
}

// GetTokenFromHeader extracts the bearer token from the Authorization header.
func GetTokenFromHeader(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.NewAppError(errors.ErrMissingAuthorizationHeader, "No token provided", nil)
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.NewAppError(errors.ErrInvalidTokenFormat, "Invalid authorization header format", nil)
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}
