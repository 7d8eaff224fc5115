package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atgdev/mediamanager/mediamanager"
)

var (
	tokenUserID     string
	tokenCourseID   int
	tokenPermission string
	tokenTTL        time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign and print an access token",
	Long: `Sign a bearer token locally from the configured client credentials and
print it. No request is made to the API; the token can be handed to other
tools that talk to the service directly.`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "user ID the token acts as (defaults to the configured user)")
	tokenCmd.Flags().IntVar(&tokenCourseID, "course", 0, "course ID to scope the token to")
	tokenCmd.Flags().StringVar(&tokenPermission, "permission", "", "course permission: read or write")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", mediamanager.DefaultTokenTTL, "token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	userID := tokenUserID
	if userID == "" {
		userID = cfg.Auth.UserID
	}
	if userID == "" {
		return fmt.Errorf("no user ID: pass --user or set auth.user_id in the config")
	}

	params := mediamanager.TokenParams{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		UserID:       userID,
		TTL:          tokenTTL,
	}
	if tokenCourseID > 0 {
		params.CourseID = mediamanager.Int(tokenCourseID)
		params.CoursePermission = mediamanager.CoursePermission(tokenPermission)
	}

	token, err := mediamanager.SignToken(params)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
