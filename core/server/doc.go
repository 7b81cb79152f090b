// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings, such as the listening
// port and the API key protecting the endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
