package server

// Config holds configuration for the read-only HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// TopLimit is the default limit for the top-customers endpoint.
	TopLimit int `mapstructure:"top_limit" default:"10"`
}
