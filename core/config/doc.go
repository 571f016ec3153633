// Package config provides configuration management for the voucher tools.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Input: default locations of the barcode and order exports
//   - Log: logging level and format
//   - Server: read-only HTTP server settings (port, top-customers limit)
//   - Storage: S3/MinIO credentials and export bucket
//
// Defaults come from `default` struct tags; environment variables override
// them using underscore-joined keys (INPUT_BARCODES, LOG_LEVEL, SERVER_PORT,
// STORAGE_BUCKET, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Input.Barcodes)
package config
