// Package ioutils provides the file system helpers used by exports.
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/exports")
//
//	// Replace a file atomically
//	err := ioutils.WriteFile(ctx, "/path/to/exports/Queen.ics", data)
//
// # Filename Sanitization
//
// Use SanitizeFileName to turn an artist name into a file name:
//
//	safe := ioutils.SanitizeFileName("AC/DC") // Returns "AC_DC"
package ioutils
