// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file in the working directory is read once, if present
//   - LoadEnv reads additional .env files, later files taking precedence
//   - Load parses the environment into any struct using env tags and caches
//     the result per type, so every package sees the same values
//
// # Usage
//
//	var settings numberfield.Settings
//	config.MustLoad(&settings)
//
//	field := numberfield.NewField(settings.FieldOptions()...)
//
// # Error Handling
//
// Load returns ErrParsingConfig joined with the parser error when a variable
// is malformed or a required one is missing, and ErrNilPointer for a nil
// target. MustLoad and MustLoadEnv panic instead, for configuration the
// process cannot start without.
//
// # Testing Helpers
//
// ResetCache clears every cached type and ForceReload re-parses one type
// after the environment changed.
package config
