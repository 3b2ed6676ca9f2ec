package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	if ManifestFile() != "tracks.yaml" {
		t.Errorf("unexpected manifest default %q", ManifestFile())
	}
	if BuildDirectory() != "data" {
		t.Errorf("unexpected build directory default %q", BuildDirectory())
	}
	if KeepGoing() {
		t.Errorf("Expected keep going to default to false")
	}
	if MinSeparation() != 15 || SimplifyAbove() != 400 || ProfilePoints() != 200 {
		t.Errorf("unexpected pipeline defaults %v %v %v", MinSeparation(), SimplifyAbove(), ProfilePoints())
	}
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	SetDefaults()

	viper.Set(KeyMinSeparation, 25.5)
	viper.Set(KeyKeepGoing, true)

	if MinSeparation() != 25.5 {
		t.Errorf("Expected override 25.5, got %v", MinSeparation())
	}
	if !KeepGoing() {
		t.Errorf("Expected keep going override")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	BindEnv(viper.GetViper())

	t.Setenv("TRAILMAP_SIMPLIFY_ABOVE", "7")
	t.Setenv("TRAILMAP_BUILD_DIRECTORY", "public/trails")
	t.Setenv("TRAILMAP_BUILD_KEEP_GOING", "true")

	if SimplifyAbove() != 7 {
		t.Errorf("Expected simplify.above from environment, got %v", SimplifyAbove())
	}
	if BuildDirectory() != "public/trails" {
		t.Errorf("Expected build.directory from environment, got %q", BuildDirectory())
	}
	if !KeepGoing() {
		t.Errorf("Expected build.keep_going from environment")
	}
	if ProfilePoints() != 200 {
		t.Errorf("Expected unset profile.max_points to keep its default, got %v", ProfilePoints())
	}
}
