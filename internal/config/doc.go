// Package config manages application configuration for the activities API.
//
// Configuration is loaded from environment variables, optionally seeded
// from a .env file in the working directory. All configuration is
// centralized here to provide a single source of truth.
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - request read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - response write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated allowed origins
//	STATIC_DIR            - directory served under /static/
package config
