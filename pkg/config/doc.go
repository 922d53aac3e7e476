// Package config loads MiniRegex settings from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. The first
// call to Load reads an optional .env file from the working directory, then
// every call parses the environment into a struct using `env` tags:
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    return err
//	}
//
// Recognised variables:
//
//	MINIREGEX_MATCH_TIMEOUT  per-match timeout, e.g. "250ms" (0 disables)
//	MINIREGEX_LOG_LEVEL      debug, info, warn or error
//	MINIREGEX_LOG_FORMAT     json or text
//	MINIREGEX_ENV            development, staging or production
//
// Load and MustLoad are generic and accept any tagged struct. LoadEnv loads
// explicit .env files and, unlike the implicit load, reports missing files.
package config
