package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atgdev/mediamanager/filter"
	"github.com/atgdev/mediamanager/mediamanager"
)

var metaFlags []string

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage course image libraries",
}

var imagesUploadCmd = &cobra.Command{
	Use:   "upload <course-id> <file>...",
	Short: "Upload one or more images to a course library",
	Long: `Upload image files to a course library in a single request. An optional
--title is shared by the whole batch; without it each image keeps its file
name.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runImagesUpload,
}

var imagesShowCmd = &cobra.Command{
	Use:   "show <image-id>",
	Short: "Show an image with its metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runImagesShow,
}

var imagesListCmd = &cobra.Command{
	Use:   "list <collection-id>",
	Short: "List the images in a collection, optionally filtered",
	Args:  cobra.ExactArgs(1),
	RunE:  runImagesList,
}

var imagesUpdateCmd = &cobra.Command{
	Use:   "update <image-id>",
	Short: "Update an image's title, description or metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runImagesUpdate,
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete <image-id>",
	Short: "Delete an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runImagesDelete,
}

func init() {
	rootCmd.AddCommand(imagesCmd)
	imagesCmd.AddCommand(imagesUploadCmd)
	imagesCmd.AddCommand(imagesShowCmd)
	imagesCmd.AddCommand(imagesListCmd)
	imagesCmd.AddCommand(imagesUpdateCmd)
	imagesCmd.AddCommand(imagesDeleteCmd)

	imagesUploadCmd.Flags().StringVar(&titleFlag, "title", "", "title shared by the uploaded batch")

	imagesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	imagesUpdateCmd.Flags().StringVar(&titleFlag, "title", "", "image title")
	imagesUpdateCmd.Flags().StringVar(&descriptionFlag, "description", "", "image description")
	imagesUpdateCmd.Flags().StringArrayVar(&metaFlags, "meta", nil, "metadata pair label=value (repeatable, order preserved)")
}

func runImagesUpload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	courseID, err := parseID(args[0], "course id")
	if err != nil {
		return err
	}

	files := make([]mediamanager.UploadFile, 0, len(args)-1)
	for _, path := range args[1:] {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		files = append(files, mediamanager.UploadFile{
			Name:        filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Reader:      f,
		})
	}

	images, err := session.API().UploadImages(ctx, courseID, files, titleFlag)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Uploaded %d images to course %d:\n", len(images), courseID)
	for _, image := range images {
		fmt.Printf("• [%d] %s\n", image.ID, image.Title)
	}
	return nil
}

func runImagesShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	imageID, err := parseID(args[0], "image id")
	if err != nil {
		return err
	}

	image, err := session.API().GetImage(ctx, imageID)
	if err != nil {
		return err
	}

	fmt.Printf("\n[%d] %s (course %d)\n", image.ID, image.Title, image.CourseID)
	if image.Description != "" {
		fmt.Println(image.Description)
	}
	if image.ImageURL != "" {
		fmt.Printf("URL: %s\n", image.ImageURL)
	}
	for _, m := range image.Metadata {
		fmt.Printf("  %s: %s\n", m.Label, m.Value)
	}
	return nil
}

func runImagesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	collectionID, err := parseID(args[0], "collection id")
	if err != nil {
		return err
	}

	images, err := session.API().GetCollectionImages(ctx, collectionID)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.CompileImageFilter(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		images, err = filter.Images(images, f)
		if err != nil {
			return err
		}
	}

	if len(images) == 0 {
		fmt.Println("No images found.")
		return nil
	}

	fmt.Printf("\nFound %d images:\n", len(images))
	fmt.Println(strings.Repeat("-", 80))
	for _, image := range images {
		fmt.Printf("• [%d] %s\n", image.ID, image.Title)
	}
	return nil
}

func runImagesUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	imageID, err := parseID(args[0], "image id")
	if err != nil {
		return err
	}

	params := mediamanager.ImageParams{}
	if titleFlag != "" {
		params.Title = mediamanager.String(titleFlag)
	}
	if descriptionFlag != "" {
		params.Description = mediamanager.String(descriptionFlag)
	}
	for _, pair := range metaFlags {
		label, value, ok := strings.Cut(pair, "=")
		if !ok || label == "" {
			return fmt.Errorf("invalid metadata pair %q: expected label=value", pair)
		}
		params.Metadata = append(params.Metadata, mediamanager.ImageMetadata{Label: label, Value: value})
	}

	image, err := session.API().UpdateImage(ctx, imageID, params)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated image [%d] %s\n", image.ID, image.Title)
	return nil
}

func runImagesDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	imageID, err := parseID(args[0], "image id")
	if err != nil {
		return err
	}

	if err := session.API().DeleteImage(ctx, imageID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted image %d\n", imageID)
	return nil
}
