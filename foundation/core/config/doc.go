// File: doc.go
// Title: Core Configuration Package Documentation
// Description: Package documentation for mRW configuration management.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

/*
Package config loads and validates the mRW configuration.

Configuration files may be TOML (default) or YAML, detected by extension.
Values resolve in three layers, later layers winning:

 1. built-in defaults (Default)
 2. the configuration file
 3. MRW_* environment variables (MRW_ANGLE_MODE, MRW_LOG_LEVEL,
    MRW_LOG_FORMAT, MRW_SERVER_ADDRESS, MRW_MAX_EXPRESSION_LENGTH,
    MRW_HISTORY_SIZE)

LoadOrDefault tolerates a missing file and falls back to defaults, which is
the normal path for the CLI; Load fails hard and is used when a file was
named explicitly.
*/
package config
