// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as supported game editions.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the game edition
// (AoC, AoK, HD) the loaded dump belongs to.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the serve command to validate the configured edition.
package server
