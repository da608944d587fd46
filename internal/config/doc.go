// Package config provides configuration management for csvgate.
//
// Configuration is loaded with Viper from config.yaml in the working
// directory or the user's config directory, with CSVGATE_* environment
// variable overrides. The config file carries only app-level settings
// (default report format, schema search directories); validation schemas
// themselves live in separate documents handled by the schema package.
package config
