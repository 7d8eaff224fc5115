package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/atgdev/mediamanager/config"
	"github.com/atgdev/mediamanager/mediamanager"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	session *mediamanager.Session

	// Command flags
	filterExpr string
	titleFlag  string
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information stamped in at link time.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mediamgr",
	Short: "Manage courses, collections and images in a media management API",
	Long: `mediamgr is a CLI for the media management API. It authenticates with
client credentials, then lets you search and manage courses, curate image
collections, and upload images to course libraries.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API session
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	var opts []mediamanager.Option
	if cfg.API.Timeout > 0 {
		opts = append(opts, mediamanager.WithTimeout(time.Duration(cfg.API.Timeout)*time.Second))
	}

	session, err = mediamanager.NewSession(cfg.Auth.ClientID, cfg.Auth.ClientSecret, cfg.API.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// authenticate establishes the per-user credential configured in auth.*.
func authenticate(ctx context.Context) error {
	var courseID *int
	if cfg.Auth.CourseID > 0 {
		courseID = mediamanager.Int(cfg.Auth.CourseID)
	}

	err := session.Authenticate(ctx, cfg.Auth.UserID,
		courseID, mediamanager.CoursePermission(cfg.Auth.CoursePermission))
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
