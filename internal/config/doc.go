// Package config loads motion settings.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults (Default)
//  2. a TOML file
//  3. MOTION_* environment variables
//
// A loaded Config converts to a dispatcher.Config and a logging level. Watch
// reloads the file when it changes on disk.
package config
