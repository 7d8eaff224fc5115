package mediamanager

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// SessionTokenTTL is the lifetime of the tokens a Session signs. Sessions hold
// day-long credentials; the standalone SignToken default is shorter. Pick one
// horizon per deployment and stick with it.
const SessionTokenTTL = 24 * time.Hour

// Session is a higher-level wrapper around the API client. It holds the client
// credentials, establishes the per-user credential, and composes client calls
// for common flows such as find-or-create.
//
// A Session starts unauthenticated; requests that require authorization will
// be rejected by the service until Authenticate is called. There is no
// automatic re-authentication on expiry.
type Session struct {
	clientID     string
	clientSecret string
	api          API
	logger       zerolog.Logger
}

// NewSession creates a session for the media management API.
func NewSession(clientID, clientSecret, baseURL string, logger zerolog.Logger, opts ...Option) (*Session, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("%w: client credentials are required", ErrInvalidArgument)
	}

	client, err := NewClient(baseURL, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		clientID:     clientID,
		clientSecret: clientSecret,
		api:          client,
		logger:       logger,
	}, nil
}

// API exposes the underlying client for direct resource operations.
func (s *Session) API() API {
	return s.api
}

// Authenticate signs a token tied to the user, installs it on the underlying
// client and registers the user with the service. All subsequent calls carry
// the credential.
func (s *Session) Authenticate(ctx context.Context, userID string, courseID *int, permission CoursePermission) error {
	if userID == "" {
		return fmt.Errorf("%w: user ID is required", ErrInvalidArgument)
	}

	token, err := SignToken(TokenParams{
		ClientID:         s.clientID,
		ClientSecret:     s.clientSecret,
		UserID:           userID,
		CourseID:         courseID,
		CoursePermission: permission,
		TTL:              SessionTokenTTL,
	})
	if err != nil {
		return err
	}

	s.api.SetAccessToken(token, SchemeBearer)
	if err := s.api.AuthorizeUser(ctx); err != nil {
		return err
	}

	s.logger.Debug().Str("user_id", userID).Msg("Authenticated with media management API")
	return nil
}

// FindOrCreateCourse resolves a course by its LTI context id and tool consumer
// instance GUID, which together are expected to identify exactly one course.
// A single match is returned as-is without a create call; no match creates a
// course with the supplied params; more than one match means the remote data
// is inconsistent and is surfaced as ErrAmbiguousCourse.
func (s *Session) FindOrCreateCourse(ctx context.Context, params CourseParams) (*Course, error) {
	if params.LTIContextID == nil || params.LTIToolConsumerInstanceGUID == nil {
		return nil, fmt.Errorf("%w: LTI context ID and tool consumer instance GUID are required", ErrInvalidArgument)
	}

	courses, err := s.api.ListCourses(ctx, CourseFilter{
		LTIContextID:                *params.LTIContextID,
		LTIToolConsumerInstanceGUID: *params.LTIToolConsumerInstanceGUID,
	})
	if err != nil {
		return nil, err
	}

	switch len(courses) {
	case 0:
		s.logger.Debug().
			Str("lti_context_id", *params.LTIContextID).
			Msg("No existing course for LTI context, creating one")
		return s.api.CreateCourse(ctx, params)
	case 1:
		return &courses[0], nil
	default:
		err := fmt.Errorf("%w: %d courses match lti_context_id=%q lti_tool_consumer_instance_guid=%q",
			ErrAmbiguousCourse, len(courses), *params.LTIContextID, *params.LTIToolConsumerInstanceGUID)
		s.logger.Error().Err(err).Msg("LTI context does not identify a unique course")
		return nil, err
	}
}
