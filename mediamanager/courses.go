package mediamanager

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListCourses lists courses, restricted by the given filter. In an LTI context
// the LTIContextID and LTIToolConsumerInstanceGUID filters are commonly used
// to find a particular course. Unset filters are sent blank and ignored by the
// server.
func (c *Client) ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	query := url.Values{}
	query.Set("lti_context_id", filter.LTIContextID)
	query.Set("lti_tool_consumer_instance_guid", filter.LTIToolConsumerInstanceGUID)
	query.Set("canvas_course_id", filter.CanvasCourseID)
	query.Set("sis_course_id", filter.SISCourseID)
	query.Set("title", filter.Title)

	var courses []Course
	if err := c.do(ctx, http.MethodGet, c.url("/courses"), requestOptions{query: query}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// SearchCourses performs a free-text search over courses.
func (c *Client) SearchCourses(ctx context.Context, text string) ([]Course, error) {
	query := url.Values{}
	query.Set("q", text)

	var courses []Course
	if err := c.do(ctx, http.MethodGet, c.url("/courses/search"), requestOptions{query: query}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse retrieves a course by id.
func (c *Client) GetCourse(ctx context.Context, courseID int) (*Course, error) {
	var course Course
	if err := c.do(ctx, http.MethodGet, c.url("/courses/%d", courseID), requestOptions{}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course.
func (c *Client) CreateCourse(ctx context.Context, params CourseParams) (*Course, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("%w: course title is required", ErrInvalidArgument)
	}

	var course Course
	if err := c.do(ctx, http.MethodPost, c.url("/courses"), requestOptions{body: params}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse updates a course.
//
// The server requires the LTI context fields to be re-supplied on update even
// when they are conceptually unchanged; dropping them can clear them
// server-side. This is a known quirk of the remote service, preserved here for
// compatibility.
func (c *Client) UpdateCourse(ctx context.Context, courseID int, params CourseParams) (*Course, error) {
	var course Course
	if err := c.do(ctx, http.MethodPut, c.url("/courses/%d", courseID), requestOptions{body: params}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse deletes a course.
func (c *Client) DeleteCourse(ctx context.Context, courseID int) error {
	return c.do(ctx, http.MethodDelete, c.url("/courses/%d", courseID), requestOptions{}, nil)
}

// CopyCourse copies a course and all of its resources into another course.
// The destination course must already exist; the client does not verify this.
func (c *Client) CopyCourse(ctx context.Context, srcCourseID, destCourseID int) (*CourseCopy, error) {
	body := struct {
		SourceID int `json:"source_id"`
	}{SourceID: srcCourseID}

	var result CourseCopy
	if err := c.do(ctx, http.MethodPost, c.url("/courses/%d/course_copy", destCourseID), requestOptions{body: body}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
