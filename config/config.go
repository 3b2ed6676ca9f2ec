package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding settings, e.g.
// TRAILMAP_SIMPLIFY_ABOVE for simplify.above.
const EnvPrefix = "trailmap"

var (
	KeyManifest       = "tracks.manifest"
	KeyBuildDirectory = "build.directory"
	KeyKeepGoing      = "build.keep_going"
	KeyMinSeparation  = "simplify.min_separation_m"
	KeySimplifyAbove  = "simplify.above"
	KeyProfilePoints  = "profile.max_points"
)

// SetDefaults registers the default value of every setting.
func SetDefaults() {
	viper.SetDefault(KeyManifest, DefaultManifestFile())
	viper.SetDefault(KeyBuildDirectory, DefaultBuildDirectory())
	viper.SetDefault(KeyKeepGoing, false)
	viper.SetDefault(KeyMinSeparation, DefaultMinSeparation())
	viper.SetDefault(KeySimplifyAbove, DefaultSimplifyAbove())
	viper.SetDefault(KeyProfilePoints, DefaultProfilePoints())
}

// BindEnv lets environment variables override every setting of v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ManifestFile is the path of the YAML track list.
func ManifestFile() string {
	return viper.GetString(KeyManifest)
}

// BuildDirectory is the directory GeoJSON files are written to.
func BuildDirectory() string {
	return viper.GetString(KeyBuildDirectory)
}

// KeepGoing reports whether a failing track is skipped instead of ending the run.
func KeepGoing() bool {
	return viper.GetBool(KeyKeepGoing)
}

// MinSeparation is the minimum distance in meters between simplified points.
func MinSeparation() float64 {
	return viper.GetFloat64(KeyMinSeparation)
}

// SimplifyAbove is the point count a track must exceed to be simplified.
func SimplifyAbove() int {
	return viper.GetInt(KeySimplifyAbove)
}

// ProfilePoints bounds the length of the elevation profile.
func ProfilePoints() int {
	return viper.GetInt(KeyProfilePoints)
}

// DefaultManifestFile is the manifest looked up in the working directory.
func DefaultManifestFile() string {
	return "tracks.yaml"
}

// DefaultBuildDirectory is the output directory relative to the working directory.
func DefaultBuildDirectory() string {
	return "data"
}

// DefaultMinSeparation is the simplifier spacing in meters.
func DefaultMinSeparation() float64 {
	return 15
}

// DefaultSimplifyAbove is the point count above which tracks are simplified.
func DefaultSimplifyAbove() int {
	return 400
}

// DefaultProfilePoints is the maximum length of an elevation profile.
func DefaultProfilePoints() int {
	return 200
}

// GPXExtensions lists the file extensions treated as GPX tracks.
func GPXExtensions() []string {
	return []string{".gpx"}
}
