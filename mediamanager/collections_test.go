package mediamanager

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCollections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/courses/5/collections", r.URL.Path)
		json.NewEncoder(w).Encode([]Collection{{ID: 1, CourseID: 5, Title: "Week 1"}})
	})

	collections, err := client.ListCollections(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "Week 1", collections[0].Title)
}

func TestCreateCollectionValidation(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.CreateCollection(context.Background(), CollectionParams{Title: "No course"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.CreateCollection(context.Background(), CollectionParams{CourseID: 5})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.False(t, called)
}

func TestCreateCollection(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Collection{ID: 3, CourseID: 5, Title: "Week 1", Description: "Intro"})
	})

	collection, err := client.CreateCollection(context.Background(), CollectionParams{
		CourseID:    5,
		Title:       "Week 1",
		Description: String("Intro"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, collection.ID)
	assert.Equal(t, map[string]any{"course_id": float64(5), "title": "Week 1", "description": "Intro"}, gotBody)
}

func TestUpdateCollectionMembershipReplace(t *testing.T) {
	t.Run("nil leaves membership key out", func(t *testing.T) {
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(Collection{ID: 3})
		})

		_, err := client.UpdateCollection(context.Background(), 3, UpdateCollectionParams{
			Title: String("Renamed"),
		})
		require.NoError(t, err)
		assert.NotContains(t, gotBody, "course_image_ids")
	})

	t.Run("empty slice clears membership", func(t *testing.T) {
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/collections/3", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(Collection{ID: 3, CourseImageIDs: []int{}})
		})

		collection, err := client.UpdateCollection(context.Background(), 3, UpdateCollectionParams{
			CourseImageIDs: IntSlice([]int{}),
		})
		require.NoError(t, err)
		require.Contains(t, gotBody, "course_image_ids")
		assert.Empty(t, gotBody["course_image_ids"])
		assert.Empty(t, collection.CourseImageIDs)
	})

	t.Run("full replacement list", func(t *testing.T) {
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(Collection{ID: 3, CourseImageIDs: []int{10, 11, 12}})
		})

		_, err := client.UpdateCollection(context.Background(), 3, UpdateCollectionParams{
			CourseImageIDs: IntSlice([]int{10, 11, 12}),
		})
		require.NoError(t, err)
		assert.Equal(t, []any{float64(10), float64(11), float64(12)}, gotBody["course_image_ids"])
	})
}

func TestGetCollectionImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/3/images", r.URL.Path)
		json.NewEncoder(w).Encode([]Image{})
	})

	images, err := client.GetCollectionImages(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestDeleteCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/collections/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteCollection(context.Background(), 3))
}
