package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("Alice", "E1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "Alice", claims.ParticipantName)
	assert.Equal(t, "E1", claims.EventID)
}

func TestValidateAndParseToken_Garbage(t *testing.T) {
	claims, err := ValidateAndParseToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateAndParseToken_WrongSecret(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		ParticipantName: "Alice",
		EventID:         "E1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateAndParseToken_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		ParticipantName: "Alice",
		EventID:         "E1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tokenString, err := expired.SignedString(signingSecret())
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGetTokenFromHeader(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer abc.def.ghi")
	c := e.NewContext(req, httptest.NewRecorder())

	token, err := GetTokenFromHeader(c)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestGetTokenFromHeader_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	_, err := GetTokenFromHeader(c)
	assert.Error(t, err)
}

func TestGetTokenFromHeader_BadScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := GetTokenFromHeader(c)
	assert.Error(t, err)
}
