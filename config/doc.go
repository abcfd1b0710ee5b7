// Package config loads knighttour settings.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (see Default);
//  2. a config file: the path given to Load, or knighttour.{yaml,json,toml}
//     in the working directory when the path is empty;
//  3. environment variables prefixed KNIGHTTOUR_, with dots replaced by
//     underscores (KNIGHTTOUR_SEARCH_TIMEOUT=5s).
//
// Command-line flags are applied on top by the knighttour command.
//
// Errors:
//
//   - ErrInvalidConfig wraps every Validate failure.
//   - file read and decode errors are returned as-is.
package config
