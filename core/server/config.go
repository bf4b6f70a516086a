package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies (uploads included), in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
	// StaticDir is served under /static when set.
	StaticDir string `mapstructure:"static_dir" default:""`
}

const (
	// DefaultBodyLimitMB is used when BodyLimitMB is not positive.
	DefaultBodyLimitMB = 16
)

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = DefaultBodyLimitMB
	}
	return mb * 1024 * 1024
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
