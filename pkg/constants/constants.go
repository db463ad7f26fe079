// Package constants provides shared constants used throughout the addrename codebase.
// This includes timeouts, limits, file names, and permissions that should be
// consistent across the application.
package constants

import "time"

// DefaultHTTPTimeout is the standard timeout for a single PAN-OS XML API call
const DefaultHTTPTimeout = 30 * time.Second

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Run constants
const (
	// ResultLogFile is the result log written in the working directory for every scope iteration
	ResultLogFile = "address_object_rename_results.txt"

	// DefaultWorkers is the default width of the rename worker pool
	DefaultWorkers = 16

	// DuplicateSuffix is inserted between a colliding name and its counter
	DuplicateSuffix = "_DUPLICATE_"

	// MaxObjectNameLength is the longest address object name PAN-OS accepts
	MaxObjectNameLength = 63

	// FieldsPerRecord is the number of fields in one desired-rename record
	FieldsPerRecord = 2
)

// Config constants
const (
	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "ADDRENAME"

	// ConfigName is the config file base name searched in $HOME and the working directory
	ConfigName = ".addrename"
)
