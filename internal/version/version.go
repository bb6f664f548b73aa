// Package version provides build and compatibility information for
// recordkit.
package version

import (
	"runtime"

	"github.com/Ddemon26/recordkit/internal/config"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"
	// Commit is the git commit hash (set by build flags)
	Commit = "unknown"
	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// Info contains version, build and catalog compatibility information.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
	Catalogs  string
}

// Get returns the version information for this build.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Catalogs:  config.SupportedCatalogVersions,
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return i.Version
}

// Full returns a detailed version string with build information and the
// supported catalog version range.
func (i Info) Full() string {
	return i.Version + " (" + i.Commit + ") built " + i.BuildDate + " " +
		i.GoVersion + " " + i.Platform + ", catalogs " + i.Catalogs
}
