// Package rarity provides version information and metadata for the
// rarity-ranker library.
//
// The version follows semantic versioning (semver) principles and is updated
// with each release to reflect changes in functionality, bug fixes, or
// breaking changes.
package rarity

// Version represents the current semantic version of the rarity-ranker
// library.
//
// Pre-1.0 development phase: breaking changes may occur between minor
// versions.
const Version = "0.3.0"

// VersionInfo encapsulates version metadata for the rarity-ranker library.
type VersionInfo struct {
	// Version contains the semantic version string following semver format
	Version string

	// Name contains the canonical library name for identification purposes
	Name string
}

// GetVersion returns structured version information for the rarity-ranker
// library.
//
// Usage:
//
//	info := GetVersion()
//	log.Printf("Using %s version %s", info.Name, info.Version)
func GetVersion() VersionInfo {
	return VersionInfo{
		Version: Version,
		Name:    "rarity-ranker",
	}
}
