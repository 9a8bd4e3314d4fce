// Package config provides configuration management for the graph builder.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, game edition)
//   - Database: MySQL connection details for the database source
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and encoding
//   - Source: which backend the genie dump is loaded from
//   - Convert: snapshot object key and upload switch
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
