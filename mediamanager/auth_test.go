package mediamanager

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID     = "myapp"
	testClientSecret = "07c91feb29b393e9418416aef05b433d9de7f638"
	testUserID       = "x123456x"
)

func TestObtainToken(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/obtain-token", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "b0a4e9e4ae4a4cbcb079eab3637f2b22",
			"user_id":      testUserID,
			"expires":      "2026-09-01T00:00:00Z",
		})
	})

	token, err := client.ObtainToken(context.Background(), ObtainTokenParams{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
		UserID:       testUserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "b0a4e9e4ae4a4cbcb079eab3637f2b22", token.AccessToken)
	assert.Equal(t, testUserID, token.UserID)

	assert.Equal(t, testClientID, gotBody["client_id"])
	assert.Equal(t, testClientSecret, gotBody["client_secret"])
	assert.Equal(t, testUserID, gotBody["user_id"])
	assert.NotContains(t, gotBody, "course_id")
	assert.NotContains(t, gotBody, "course_permission")
}

func TestObtainTokenWithCourseScope(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok"})
	})

	_, err := client.ObtainToken(context.Background(), ObtainTokenParams{
		ClientID:         testClientID,
		ClientSecret:     testClientSecret,
		UserID:           testUserID,
		CourseID:         Int(42),
		CoursePermission: PermissionWrite,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(42), gotBody["course_id"])
	assert.Equal(t, "write", gotBody["course_permission"])
}

func TestObtainTokenInvalidPermission(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.ObtainToken(context.Background(), ObtainTokenParams{
		ClientID:         testClientID,
		ClientSecret:     testClientSecret,
		UserID:           testUserID,
		CourseID:         Int(42),
		CoursePermission: CoursePermission("invalid"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, called, "no network call should be made for an invalid permission")
}

func TestAuthorizeUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/authorize-user", r.URL.Path)
		assert.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	client.SetAccessToken("signed-token", SchemeBearer)
	require.NoError(t, client.AuthorizeUser(context.Background()))
}

func parseTestToken(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte(testClientSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestSignToken(t *testing.T) {
	signed, err := SignToken(TokenParams{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
		UserID:       testUserID,
	})
	require.NoError(t, err)

	claims := parseTestToken(t, signed)
	assert.Equal(t, testClientID, claims["client_id"])
	assert.Equal(t, testUserID, claims["user_id"])
	assert.NotContains(t, claims, "course_id")
	assert.NotContains(t, claims, "course_permission")

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(DefaultTokenTTL/time.Second), exp-iat)
}

func TestSignTokenWithCourseScope(t *testing.T) {
	signed, err := SignToken(TokenParams{
		ClientID:         testClientID,
		ClientSecret:     testClientSecret,
		UserID:           testUserID,
		CourseID:         Int(7),
		CoursePermission: PermissionWrite,
		TTL:              2 * time.Hour,
	})
	require.NoError(t, err)

	claims := parseTestToken(t, signed)
	assert.Equal(t, float64(7), claims["course_id"])
	assert.Equal(t, "write", claims["course_permission"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(7200), exp-iat)
}

func TestSignTokenCoercesUnknownPermission(t *testing.T) {
	signed, err := SignToken(TokenParams{
		ClientID:         testClientID,
		ClientSecret:     testClientSecret,
		UserID:           testUserID,
		CourseID:         Int(7),
		CoursePermission: CoursePermission("admin"),
	})
	require.NoError(t, err)

	claims := parseTestToken(t, signed)
	assert.Equal(t, "read", claims["course_permission"])
}
