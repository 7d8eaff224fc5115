package mediamanager

import (
	"context"
	"fmt"
	"net/http"
)

// ListCollections lists the collections in a course.
func (c *Client) ListCollections(ctx context.Context, courseID int) ([]Collection, error) {
	var collections []Collection
	if err := c.do(ctx, http.MethodGet, c.url("/courses/%d/collections", courseID), requestOptions{}, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollection retrieves a collection by id.
func (c *Client) GetCollection(ctx context.Context, collectionID int) (*Collection, error) {
	var collection Collection
	if err := c.do(ctx, http.MethodGet, c.url("/collections/%d", collectionID), requestOptions{}, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// GetCollectionImages retrieves the images that are members of a collection.
func (c *Client) GetCollectionImages(ctx context.Context, collectionID int) ([]Image, error) {
	var images []Image
	if err := c.do(ctx, http.MethodGet, c.url("/collections/%d/images", collectionID), requestOptions{}, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// CreateCollection creates a collection in a course.
func (c *Client) CreateCollection(ctx context.Context, params CollectionParams) (*Collection, error) {
	if params.CourseID == 0 {
		return nil, fmt.Errorf("%w: course ID is required", ErrInvalidArgument)
	}
	if params.Title == "" {
		return nil, fmt.Errorf("%w: collection title is required", ErrInvalidArgument)
	}

	var collection Collection
	if err := c.do(ctx, http.MethodPost, c.url("/collections"), requestOptions{body: params}, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// UpdateCollection updates a collection. When CourseImageIDs is non-nil it
// replaces the collection membership wholesale; an empty slice clears it.
func (c *Client) UpdateCollection(ctx context.Context, collectionID int, params UpdateCollectionParams) (*Collection, error) {
	var collection Collection
	if err := c.do(ctx, http.MethodPut, c.url("/collections/%d", collectionID), requestOptions{body: params}, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// DeleteCollection deletes a collection.
func (c *Client) DeleteCollection(ctx context.Context, collectionID int) error {
	return c.do(ctx, http.MethodDelete, c.url("/collections/%d", collectionID), requestOptions{}, nil)
}
