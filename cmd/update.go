package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repoSlug = "atgdev/mediamanager"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mediamgr to the latest release",
	// Self-update does not touch the API, so skip config loading
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("could not create updater: %w", err)
	}

	latest, err := detectLatest(ctx, updater, version)
	if err != nil {
		return err
	}
	if latest == nil {
		fmt.Printf("Current binary is the latest version: %s\n", version)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", latest.Version())
	return nil
}

// detectLatest resolves the newest release for the repository. It returns nil
// when the running binary is already the latest version. A repository with no
// release suitable for this platform is an error, not a match.
func detectLatest(ctx context.Context, updater *selfupdate.Updater, current string) (*selfupdate.Release, error) {
	v, err := semver.ParseTolerant(current)
	if err != nil {
		return nil, fmt.Errorf("could not parse version %q: %w", current, err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("latest version for %s/%s could not be found from github repository", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(v.String()) {
		return nil, nil
	}
	return latest, nil
}
