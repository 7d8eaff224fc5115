package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/atgdev/mediamanager/filter"
	"github.com/atgdev/mediamanager/mediamanager"
)

var (
	searchText       string
	sisCourseID      string
	canvasCourseID   int
	ltiContextID     string
	ltiInstanceGUID  string
	ltiContextTitle  string
	ltiContextLabel  string
	findOrCreateFlag bool
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage courses",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses, optionally filtered",
	Long: `List courses. Use --search for a free-text search on the server, or
--filter for a client-side filter expression, e.g.:

  mediamgr courses list --filter 'contains(Course.Title, "art") and hasContext()'`,
	RunE: runCoursesList,
}

var coursesShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course with its collections and image library",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesShow,
}

var coursesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course",
	Long: `Create a course. With --find-or-create, an existing course matching the
given LTI context id and tool consumer instance GUID is returned instead of
creating a duplicate.`,
	RunE: runCoursesCreate,
}

var coursesUpdateCmd = &cobra.Command{
	Use:   "update <course-id>",
	Short: "Update a course",
	Long: `Update a course. Only the given flags are sent; note that the server may
clear LTI context fields that are not re-supplied on update.`,
	Args: cobra.ExactArgs(1),
	RunE: runCoursesUpdate,
}

var coursesDeleteCmd = &cobra.Command{
	Use:   "delete <course-id>",
	Short: "Delete a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesDelete,
}

var coursesCopyCmd = &cobra.Command{
	Use:   "copy <source-id> <dest-id>",
	Short: "Copy a course's resources into an existing course",
	Args:  cobra.ExactArgs(2),
	RunE:  runCoursesCopy,
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
	coursesCmd.AddCommand(coursesCreateCmd)
	coursesCmd.AddCommand(coursesUpdateCmd)
	coursesCmd.AddCommand(coursesDeleteCmd)
	coursesCmd.AddCommand(coursesCopyCmd)

	coursesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	coursesListCmd.Flags().StringVarP(&searchText, "search", "s", "", "server-side free-text search")

	coursesCreateCmd.Flags().StringVar(&titleFlag, "title", "", "course title (required)")
	coursesCreateCmd.Flags().StringVar(&sisCourseID, "sis-course-id", "", "SIS course ID")
	coursesCreateCmd.Flags().IntVar(&canvasCourseID, "canvas-course-id", 0, "Canvas course ID")
	coursesCreateCmd.Flags().StringVar(&ltiContextID, "lti-context-id", "", "LTI context ID")
	coursesCreateCmd.Flags().StringVar(&ltiInstanceGUID, "lti-instance-guid", "", "LTI tool consumer instance GUID")
	coursesCreateCmd.Flags().StringVar(&ltiContextTitle, "lti-context-title", "", "LTI context title")
	coursesCreateCmd.Flags().StringVar(&ltiContextLabel, "lti-context-label", "", "LTI context label")
	coursesCreateCmd.Flags().BoolVar(&findOrCreateFlag, "find-or-create", false, "return the existing course for the LTI context if there is one")
	coursesCreateCmd.MarkFlagRequired("title")

	coursesUpdateCmd.Flags().StringVar(&titleFlag, "title", "", "course title")
	coursesUpdateCmd.Flags().StringVar(&sisCourseID, "sis-course-id", "", "SIS course ID")
	coursesUpdateCmd.Flags().IntVar(&canvasCourseID, "canvas-course-id", 0, "Canvas course ID")
	coursesUpdateCmd.Flags().StringVar(&ltiContextID, "lti-context-id", "", "LTI context ID")
	coursesUpdateCmd.Flags().StringVar(&ltiInstanceGUID, "lti-instance-guid", "", "LTI tool consumer instance GUID")
	coursesUpdateCmd.Flags().StringVar(&ltiContextTitle, "lti-context-title", "", "LTI context title")
	coursesUpdateCmd.Flags().StringVar(&ltiContextLabel, "lti-context-label", "", "LTI context label")
}

// courseParamsFromFlags builds the request params from whichever flags were set.
func courseParamsFromFlags() mediamanager.CourseParams {
	params := mediamanager.CourseParams{Title: titleFlag}
	if sisCourseID != "" {
		params.SISCourseID = mediamanager.String(sisCourseID)
	}
	if canvasCourseID != 0 {
		params.CanvasCourseID = mediamanager.Int(canvasCourseID)
	}
	if ltiContextID != "" {
		params.LTIContextID = mediamanager.String(ltiContextID)
	}
	if ltiInstanceGUID != "" {
		params.LTIToolConsumerInstanceGUID = mediamanager.String(ltiInstanceGUID)
	}
	if ltiContextTitle != "" {
		params.LTIContextTitle = mediamanager.String(ltiContextTitle)
	}
	if ltiContextLabel != "" {
		params.LTIContextLabel = mediamanager.String(ltiContextLabel)
	}
	return params
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", what, arg)
	}
	return id, nil
}

func runCoursesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	var (
		courses []mediamanager.Course
		err     error
	)
	if searchText != "" {
		courses, err = session.API().SearchCourses(ctx, searchText)
	} else {
		courses, err = session.API().ListCourses(ctx, mediamanager.CourseFilter{})
	}
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.CompileCourseFilter(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		courses, err = filter.Courses(courses, f)
		if err != nil {
			return err
		}
	}

	if len(courses) == 0 {
		fmt.Println("No courses found.")
		return nil
	}

	fmt.Printf("\nFound %d courses:\n", len(courses))
	fmt.Println(strings.Repeat("-", 80))
	for _, course := range courses {
		fmt.Printf("• [%d] %s", course.ID, course.Title)
		if course.SISCourseID != "" {
			fmt.Printf(" (sis: %s)", course.SISCourseID)
		}
		fmt.Println()
		if course.LTIContextID != "" {
			fmt.Printf("  LTI: %s @ %s\n", course.LTIContextID, course.LTIToolConsumerInstanceGUID)
		}
	}
	return nil
}

func runCoursesShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	courseID, err := parseID(args[0], "course id")
	if err != nil {
		return err
	}

	// The client is strictly synchronous; fan out here instead.
	var (
		course      *mediamanager.Course
		collections []mediamanager.Collection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		course, err = session.API().GetCourse(gctx, courseID)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = session.API().ListCollections(gctx, courseID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("\n[%d] %s\n", course.ID, course.Title)
	if course.SISCourseID != "" {
		fmt.Printf("SIS course ID: %s\n", course.SISCourseID)
	}
	if course.CanvasCourseID != 0 {
		fmt.Printf("Canvas course ID: %d\n", course.CanvasCourseID)
	}
	if course.LTIContextID != "" {
		fmt.Printf("LTI context: %s (%s)\n", course.LTIContextID, course.LTIToolConsumerInstanceGUID)
	}

	if len(collections) == 0 {
		fmt.Println("No collections.")
		return nil
	}

	fmt.Printf("\nCollections (%d):\n", len(collections))
	for _, collection := range collections {
		fmt.Printf("• [%d] %s (%d images)\n", collection.ID, collection.Title, len(collection.CourseImageIDs))
	}
	return nil
}

func runCoursesCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	params := courseParamsFromFlags()

	var (
		course *mediamanager.Course
		err    error
	)
	if findOrCreateFlag {
		course, err = session.FindOrCreateCourse(ctx, params)
	} else {
		course, err = session.API().CreateCourse(ctx, params)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Course [%d] %s\n", course.ID, course.Title)
	return nil
}

func runCoursesUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	courseID, err := parseID(args[0], "course id")
	if err != nil {
		return err
	}

	course, err := session.API().UpdateCourse(ctx, courseID, courseParamsFromFlags())
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated course [%d] %s\n", course.ID, course.Title)
	return nil
}

func runCoursesDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	courseID, err := parseID(args[0], "course id")
	if err != nil {
		return err
	}

	if err := session.API().DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted course %d\n", courseID)
	return nil
}

func runCoursesCopy(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := authenticate(ctx); err != nil {
		return err
	}

	srcID, err := parseID(args[0], "source course id")
	if err != nil {
		return err
	}
	destID, err := parseID(args[1], "destination course id")
	if err != nil {
		return err
	}

	// The destination course must already exist; the server rejects the copy
	// otherwise.
	result, err := session.API().CopyCourse(ctx, srcID, destID)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Copied course %d into %d\n", result.SourceID, destID)
	return nil
}
