package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atgdev/mediamanager/mediamanager"
)

var descriptionFlag string

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage image collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list <course-id>",
	Short: "List the collections in a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsList,
}

var collectionsShowCmd = &cobra.Command{
	Use:   "show <collection-id>",
	Short: "Show a collection and its member images",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsShow,
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create <course-id>",
	Short: "Create a collection in a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsCreate,
}

var collectionsSetImagesCmd = &cobra.Command{
	Use:   "set-images <collection-id> [image-id...]",
	Short: "Replace the collection membership with the given image ids",
	Long: `Replace the collection membership with the given course image ids, in
order. The list replaces the membership wholesale: passing no image ids
empties the collection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCollectionsSetImages,
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <collection-id>",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsDelete,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsShowCmd)
	collectionsCmd.AddCommand(collectionsCreateCmd)
	collectionsCmd.AddCommand(collectionsSetImagesCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)

	collectionsCreateCmd.Flags().StringVar(&titleFlag, "title", "", "collection title (required)")
	collectionsCreateCmd.Flags().StringVar(&descriptionFlag, "description", "", "collection description")
	collectionsCreateCmd.MarkFlagRequired("title")
}

func runCollectionsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	courseID, err := parseID(args[0], "course id")
	if err != nil {
		return err
	}

	collections, err := session.API().ListCollections(ctx, courseID)
	if err != nil {
		return err
	}

	if len(collections) == 0 {
		fmt.Println("No collections found.")
		return nil
	}

	fmt.Printf("\nFound %d collections:\n", len(collections))
	fmt.Println(strings.Repeat("-", 80))
	for _, collection := range collections {
		fmt.Printf("• [%d] %s (%d images)\n", collection.ID, collection.Title, len(collection.CourseImageIDs))
		if collection.Description != "" {
			fmt.Printf("  %s\n", collection.Description)
		}
	}
	return nil
}

func runCollectionsShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	collectionID, err := parseID(args[0], "collection id")
	if err != nil {
		return err
	}

	collection, err := session.API().GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	images, err := session.API().GetCollectionImages(ctx, collectionID)
	if err != nil {
		return err
	}

	fmt.Printf("\n[%d] %s (course %d)\n", collection.ID, collection.Title, collection.CourseID)
	if collection.Description != "" {
		fmt.Println(collection.Description)
	}
	fmt.Printf("\nImages (%d):\n", len(images))
	for _, image := range images {
		fmt.Printf("• [%d] %s\n", image.ID, image.Title)
	}
	return nil
}

func runCollectionsCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	courseID, err := parseID(args[0], "course id")
	if err != nil {
		return err
	}

	params := mediamanager.CollectionParams{
		CourseID: courseID,
		Title:    titleFlag,
	}
	if descriptionFlag != "" {
		params.Description = mediamanager.String(descriptionFlag)
	}

	collection, err := session.API().CreateCollection(ctx, params)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Collection [%d] %s\n", collection.ID, collection.Title)
	return nil
}

func runCollectionsSetImages(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	collectionID, err := parseID(args[0], "collection id")
	if err != nil {
		return err
	}

	imageIDs := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := parseID(arg, "image id")
		if err != nil {
			return err
		}
		imageIDs = append(imageIDs, id)
	}

	collection, err := session.API().UpdateCollection(ctx, collectionID, mediamanager.UpdateCollectionParams{
		CourseImageIDs: mediamanager.IntSlice(imageIDs),
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Collection %d now has %d images\n", collection.ID, len(collection.CourseImageIDs))
	return nil
}

func runCollectionsDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	collectionID, err := parseID(args[0], "collection id")
	if err != nil {
		return err
	}

	if err := session.API().DeleteCollection(ctx, collectionID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted collection %d\n", collectionID)
	return nil
}
