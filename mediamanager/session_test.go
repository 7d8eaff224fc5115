package mediamanager

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAPI implements the API surface the Session exercises; everything else
// panics through the embedded nil interface.
type mockAPI struct {
	API

	token  string
	scheme Scheme

	authorizeCalls int
	authorizeErr   error

	listResult []Course
	listErr    error
	lastFilter CourseFilter

	created     *Course
	createCalls int
}

func (m *mockAPI) SetAccessToken(token string, scheme Scheme) {
	m.token = token
	m.scheme = scheme
}

func (m *mockAPI) AuthorizeUser(ctx context.Context) error {
	m.authorizeCalls++
	return m.authorizeErr
}

func (m *mockAPI) ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	m.lastFilter = filter
	return m.listResult, m.listErr
}

func (m *mockAPI) CreateCourse(ctx context.Context, params CourseParams) (*Course, error) {
	m.createCalls++
	if m.created != nil {
		return m.created, nil
	}
	return &Course{ID: 99, Title: params.Title}, nil
}

func newTestSession(mock *mockAPI) *Session {
	return &Session{
		clientID:     testClientID,
		clientSecret: testClientSecret,
		api:          mock,
		logger:       zerolog.Nop(),
	}
}

func TestNewSessionValidation(t *testing.T) {
	logger := zerolog.Nop()

	_, err := NewSession("", testClientSecret, "http://localhost:8000/api", logger)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSession(testClientID, "", "http://localhost:8000/api", logger)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSession(testClientID, testClientSecret, "", logger)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	sess, err := NewSession(testClientID, testClientSecret, "http://localhost:8000/api", logger)
	require.NoError(t, err)
	assert.NotNil(t, sess.API())
}

func TestAuthenticateRequiresUserID(t *testing.T) {
	mock := &mockAPI{}
	sess := newTestSession(mock)

	err := sess.Authenticate(context.Background(), "", nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, mock.authorizeCalls)
	assert.Empty(t, mock.token)
}

func TestAuthenticateInstallsBearerToken(t *testing.T) {
	mock := &mockAPI{}
	sess := newTestSession(mock)

	err := sess.Authenticate(context.Background(), testUserID, Int(42), PermissionWrite)
	require.NoError(t, err)
	assert.Equal(t, 1, mock.authorizeCalls)
	assert.Equal(t, SchemeBearer, mock.scheme)

	claims := parseTestToken(t, mock.token)
	assert.Equal(t, testUserID, claims["user_id"])
	assert.Equal(t, float64(42), claims["course_id"])
	assert.Equal(t, "write", claims["course_permission"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(SessionTokenTTL/time.Second), exp-iat)
}

func TestFindOrCreateCourse(t *testing.T) {
	existing := testCourses()[0]
	params := CourseParams{
		Title:                       "My Demo Course",
		LTIContextID:                String(existing.LTIContextID),
		LTIToolConsumerInstanceGUID: String(existing.LTIToolConsumerInstanceGUID),
	}

	t.Run("exactly one match is returned without create", func(t *testing.T) {
		mock := &mockAPI{listResult: []Course{existing}}
		sess := newTestSession(mock)

		course, err := sess.FindOrCreateCourse(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, course.ID)
		assert.Zero(t, mock.createCalls)
		assert.Equal(t, existing.LTIContextID, mock.lastFilter.LTIContextID)
		assert.Equal(t, existing.LTIToolConsumerInstanceGUID, mock.lastFilter.LTIToolConsumerInstanceGUID)
	})

	t.Run("no match issues exactly one create", func(t *testing.T) {
		mock := &mockAPI{created: &Course{ID: 7, Title: "My Demo Course"}}
		sess := newTestSession(mock)

		course, err := sess.FindOrCreateCourse(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 7, course.ID)
		assert.Equal(t, 1, mock.createCalls)
	})

	t.Run("multiple matches surface a consistency error", func(t *testing.T) {
		mock := &mockAPI{listResult: []Course{existing, testCourses()[1]}}
		sess := newTestSession(mock)

		_, err := sess.FindOrCreateCourse(context.Background(), params)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguousCourse)
		assert.Zero(t, mock.createCalls)
	})

	t.Run("missing LTI identifiers rejected locally", func(t *testing.T) {
		mock := &mockAPI{}
		sess := newTestSession(mock)

		_, err := sess.FindOrCreateCourse(context.Background(), CourseParams{Title: "No context"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

// End to end against a fake server: after Authenticate, resource calls carry
// the Bearer credential.
func TestSessionCarriesCredential(t *testing.T) {
	var authHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/auth/authorize-user":
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		case "/courses":
			json.NewEncoder(w).Encode([]Course{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	sess, err := NewSession(testClientID, testClientSecret, server.URL, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sess.Authenticate(ctx, testUserID, nil, ""))
	_, err = sess.API().ListCourses(ctx, CourseFilter{})
	require.NoError(t, err)

	require.Len(t, authHeaders, 2)
	for _, header := range authHeaders {
		assert.True(t, len(header) > len("Bearer "), "expected a Bearer credential, got %q", header)
		assert.Contains(t, header, "Bearer ")
	}
}
