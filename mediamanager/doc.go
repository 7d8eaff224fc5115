// Package mediamanager provides a client for the media management REST API,
// which stores courses, image collections and course image libraries.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client with one typed method per remote operation
//   - Session: a higher-level wrapper that handles authentication and
//     find-or-create flows
//   - Types: domain models (courses, collections, images, tokens)
//   - Errors: sentinel error kinds plus a structured APIError
//
// # Usage
//
// Create a session with your client credentials and authenticate as a user:
//
//	logger := zerolog.New(os.Stderr)
//	sess, err := mediamanager.NewSession(clientID, clientSecret, baseURL, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := sess.Authenticate(ctx, userID, nil, ""); err != nil {
//		log.Fatal(err)
//	}
//
//	course, err := sess.FindOrCreateCourse(ctx, mediamanager.CourseParams{
//		Title:                       "Intro to Art History",
//		LTIContextID:                mediamanager.String(contextID),
//		LTIToolConsumerInstanceGUID: mediamanager.String(instanceGUID),
//	})
//
// # Error Handling
//
// HTTP error responses map onto sentinel errors usable with errors.Is:
// ErrBadRequest (400), ErrForbidden (403), ErrNotFound (404), and ErrHTTP for
// any 4xx/5xx. Network failures wrap ErrTransport and unparseable success
// bodies wrap ErrDecode. The full response detail is available via errors.As
// with *APIError. The client never retries; every error is returned to the
// immediate caller.
//
// # Concurrency
//
// Every method issues exactly one blocking request. The client holds no shared
// mutable state beyond the access token; replacing the token while other
// goroutines issue requests is a data race, so authenticate before sharing a
// Client or Session across goroutines. Callers that want parallel requests
// (such as uploading to several courses at once) manage that themselves.
package mediamanager
