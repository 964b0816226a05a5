// Package config provides configuration management for the backend service.
//
// Configuration is loaded from environment variables using the env package,
// after an optional .env file has been applied. All values have defaults
// suitable for local development.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
