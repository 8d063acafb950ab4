// Package config loads library settings from environment variables.
//
// Settings structs declare their variables with caarlos0/env tags; ParseEnv
// fills them and wraps parse failures with a stable prefix.
package config
