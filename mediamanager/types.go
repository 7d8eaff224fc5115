package mediamanager

import "io"

// CoursePermission is the level of access granted on a course.
type CoursePermission string

const (
	PermissionRead  CoursePermission = "read"
	PermissionWrite CoursePermission = "write"
)

// Valid reports whether the permission is one of the two recognized values.
func (p CoursePermission) Valid() bool {
	return p == PermissionRead || p == PermissionWrite
}

// Course represents a course in the media management API. In an LTI context
// the LTIContextID/LTIToolConsumerInstanceGUID pair uniquely identifies a
// course.
type Course struct {
	ID                          int    `json:"id"`
	Title                       string `json:"title"`
	SISCourseID                 string `json:"sis_course_id,omitempty"`
	CanvasCourseID              int    `json:"canvas_course_id,omitempty"`
	LTIContextID                string `json:"lti_context_id,omitempty"`
	LTIToolConsumerInstanceGUID string `json:"lti_tool_consumer_instance_guid,omitempty"`
	LTIToolConsumerInstanceName string `json:"lti_tool_consumer_instance_name,omitempty"`
	LTIContextTitle             string `json:"lti_context_title,omitempty"`
	LTIContextLabel             string `json:"lti_context_label,omitempty"`
}

// Collection is a named, ordered grouping of images within a course.
type Collection struct {
	ID             int    `json:"id"`
	CourseID       int    `json:"course_id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	SortOrder      int    `json:"sort_order,omitempty"`
	CourseImageIDs []int  `json:"course_image_ids,omitempty"`
}

// Image represents an image in a course library.
type Image struct {
	ID          int             `json:"id"`
	CourseID    int             `json:"course_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	SortOrder   int             `json:"sort_order,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Metadata    []ImageMetadata `json:"metadata,omitempty"`
}

// ImageMetadata is a single label/value pair attached to an image. Metadata is
// transmitted as an ordered sequence, preserving the order given by the caller.
type ImageMetadata struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Token is a credential obtained from the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Expires     string `json:"expires,omitempty"`
}

// CourseCopy is the result of copying one course's resources into another.
type CourseCopy struct {
	ID       int `json:"id"`
	SourceID int `json:"source_id"`
}

// CourseParams holds the writable fields of a course. Optional fields left nil
// are omitted from the outgoing payload so the server applies its own
// defaulting.
type CourseParams struct {
	Title                       string  `json:"title,omitempty"`
	SISCourseID                 *string `json:"sis_course_id,omitempty"`
	CanvasCourseID              *int    `json:"canvas_course_id,omitempty"`
	LTIContextID                *string `json:"lti_context_id,omitempty"`
	LTIToolConsumerInstanceGUID *string `json:"lti_tool_consumer_instance_guid,omitempty"`
	LTIToolConsumerInstanceName *string `json:"lti_tool_consumer_instance_name,omitempty"`
	LTIContextTitle             *string `json:"lti_context_title,omitempty"`
	LTIContextLabel             *string `json:"lti_context_label,omitempty"`
}

// CourseFilter restricts ListCourses results. All fields are transmitted as
// query parameters, empty when unset; the server ignores blank filters.
type CourseFilter struct {
	LTIContextID                string
	LTIToolConsumerInstanceGUID string
	CanvasCourseID              string
	SISCourseID                 string
	Title                       string
}

// CollectionParams holds the fields for creating a collection.
type CollectionParams struct {
	CourseID    int     `json:"course_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateCollectionParams holds the fields for updating a collection.
//
// CourseImageIDs replaces the collection membership wholesale: nil leaves
// membership untouched, a pointer to an empty slice clears it. There is no
// incremental add/remove.
type UpdateCollectionParams struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	SortOrder      *int    `json:"sort_order,omitempty"`
	CourseImageIDs *[]int  `json:"course_image_ids,omitempty"`
}

// ImageParams holds the writable fields of an image.
type ImageParams struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	SortOrder   *int            `json:"sort_order,omitempty"`
	Metadata    []ImageMetadata `json:"metadata,omitempty"`
}

// UploadFile is a single file submitted as part of an image upload.
type UploadFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// ObtainTokenParams holds the credentials sent to the token endpoint.
type ObtainTokenParams struct {
	ClientID         string
	ClientSecret     string
	UserID           string
	CourseID         *int
	CoursePermission CoursePermission
}

// String returns a pointer to v, for use with optional params fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for use with optional params fields.
func Int(v int) *int { return &v }

// IntSlice returns a pointer to v, for use with UpdateCollectionParams.
func IntSlice(v []int) *[]int { return &v }
