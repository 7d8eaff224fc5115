package mediamanager

import "context"

// API defines the remote operations exposed by the client. Session depends on
// this interface rather than the concrete Client so callers can substitute
// mocks in tests.
type API interface {
	// SetAccessToken installs the credential carried on subsequent requests.
	SetAccessToken(token string, scheme Scheme)

	// ObtainToken obtains a temporary access token from the service.
	ObtainToken(ctx context.Context, params ObtainTokenParams) (*Token, error)

	// AuthorizeUser registers the held credential's identity with the service.
	AuthorizeUser(ctx context.Context) error

	// Course operations.
	ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error)
	SearchCourses(ctx context.Context, text string) ([]Course, error)
	GetCourse(ctx context.Context, courseID int) (*Course, error)
	CreateCourse(ctx context.Context, params CourseParams) (*Course, error)
	UpdateCourse(ctx context.Context, courseID int, params CourseParams) (*Course, error)
	DeleteCourse(ctx context.Context, courseID int) error
	CopyCourse(ctx context.Context, srcCourseID, destCourseID int) (*CourseCopy, error)

	// Collection operations.
	ListCollections(ctx context.Context, courseID int) ([]Collection, error)
	GetCollection(ctx context.Context, collectionID int) (*Collection, error)
	GetCollectionImages(ctx context.Context, collectionID int) ([]Image, error)
	CreateCollection(ctx context.Context, params CollectionParams) (*Collection, error)
	UpdateCollection(ctx context.Context, collectionID int, params UpdateCollectionParams) (*Collection, error)
	DeleteCollection(ctx context.Context, collectionID int) error

	// Image operations.
	GetImage(ctx context.Context, imageID int) (*Image, error)
	UploadImage(ctx context.Context, courseID int, file UploadFile, title string) ([]Image, error)
	UploadImages(ctx context.Context, courseID int, files []UploadFile, title string) ([]Image, error)
	UpdateImage(ctx context.Context, imageID int, params ImageParams) (*Image, error)
	DeleteImage(ctx context.Context, imageID int) error
}

var _ API = (*Client)(nil)
