package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the media management API connection details
type APIConfig struct {
	URL string `mapstructure:"url"`
	// Timeout is the per-request timeout in seconds. Zero uses the client default.
	Timeout int `mapstructure:"timeout"`
}

// AuthConfig holds the client credentials and the identity used to
// authenticate against the API
type AuthConfig struct {
	ClientID         string `mapstructure:"client_id"`
	ClientSecret     string `mapstructure:"client_secret"`
	UserID           string `mapstructure:"user_id"`
	CourseID         int    `mapstructure:"course_id"`
	CoursePermission string `mapstructure:"course_permission"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
