// Package version holds the release string shared by all tools.
package version

// Version is overridden at link time with -ldflags "-X unitig/internal/version.Version=...".
var Version = "0.3.0"
