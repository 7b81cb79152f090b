// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables
// and .env files.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for run history
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Reconcile: Matching engine options
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
