package mediamanager

import (
	"context"
	"fmt"
	"net/http"
)

// GetImage retrieves an image by id.
func (c *Client) GetImage(ctx context.Context, imageID int) (*Image, error) {
	var image Image
	if err := c.do(ctx, http.MethodGet, c.url("/images/%d", imageID), requestOptions{}, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// UploadImage uploads a single image to a course library. If title is empty
// the original file name is used.
func (c *Client) UploadImage(ctx context.Context, courseID int, file UploadFile, title string) ([]Image, error) {
	return c.UploadImages(ctx, courseID, []UploadFile{file}, title)
}

// UploadImages uploads one or more images to a course library in a single
// multipart request. Every file is submitted under the same field key; the
// optional title is sent once for the whole batch and the server decides how
// to apply it when multiple files are present.
func (c *Client) UploadImages(ctx context.Context, courseID int, files []UploadFile, title string) ([]Image, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: at least one upload file is required", ErrInvalidArgument)
	}
	for _, f := range files {
		if f.Name == "" || f.Reader == nil {
			return nil, fmt.Errorf("%w: upload files must have a name and a reader", ErrInvalidArgument)
		}
	}

	opts := requestOptions{files: files}
	if title != "" {
		opts.form = map[string]string{"title": title}
	}

	var images []Image
	if err := c.do(ctx, http.MethodPost, c.url("/courses/%d/images", courseID), opts, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// UpdateImage updates an image in the course library. Metadata is transmitted
// in the order given by the caller.
func (c *Client) UpdateImage(ctx context.Context, imageID int, params ImageParams) (*Image, error) {
	var image Image
	if err := c.do(ctx, http.MethodPut, c.url("/images/%d", imageID), requestOptions{body: params}, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteImage deletes an image.
func (c *Client) DeleteImage(ctx context.Context, imageID int) error {
	return c.do(ctx, http.MethodDelete, c.url("/images/%d", imageID), requestOptions{}, nil)
}
