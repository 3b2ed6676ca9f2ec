package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bgraf/trailmap/filesystem"
	"github.com/bgraf/trailmap/geotrack"
	"github.com/go-playground/validator/v10"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// Track is the static description of one track to convert.
type Track struct {
	Loop         string  `yaml:"loop" validate:"required,excludesall=/"`
	Label        string  `yaml:"label" validate:"required"`
	Path         string  `yaml:"path" validate:"required"`
	Color        string  `yaml:"color" validate:"omitempty,hexcolor"`
	NominalMiles float64 `yaml:"nominal_miles" validate:"gte=0"`
	Variant      string  `yaml:"variant" validate:"omitempty,oneof=trk rte"`
}

// Manifest lists the tracks of a run in processing order.
type Manifest struct {
	Tracks []Track `yaml:"tracks" validate:"required,min=1,dive"`
}

// LoadManifest reads and validates the manifest at manifestPath. Track paths
// starting with ~ are expanded, relative paths are resolved against the
// directory of the manifest, and tracks without a color get one derived from
// their loop key.
func LoadManifest(manifestPath string) (Manifest, error) {
	manifestPath, err := homedir.Expand(manifestPath)
	if err != nil {
		return Manifest{}, fmt.Errorf("expand manifest path: %w", err)
	}

	payload, err := os.ReadFile(manifestPath)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	manifest, err := ParseManifest(payload)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", manifestPath, err)
	}

	base := filepath.Dir(filesystem.Abs(manifestPath))
	for i := range manifest.Tracks {
		p, err := homedir.Expand(manifest.Tracks[i].Path)
		if err != nil {
			return Manifest{}, fmt.Errorf("track '%s': expand path: %w", manifest.Tracks[i].Loop, err)
		}
		manifest.Tracks[i].Path = filesystem.ResolveRelative(base, p)
	}

	return manifest, nil
}

// ParseManifest decodes and validates a manifest without touching the
// filesystem.
func ParseManifest(payload []byte) (Manifest, error) {
	var manifest Manifest
	if err := yaml.UnmarshalStrict(payload, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("decode: %w", err)
	}

	v := validator.New()
	if err := v.Struct(manifest); err != nil {
		return Manifest{}, fmt.Errorf("validate: %w", err)
	}

	palette := NewPalette()
	seen := make(map[string]bool)

	for i, t := range manifest.Tracks {
		if seen[t.Loop] {
			return Manifest{}, fmt.Errorf("duplicate loop '%s'", t.Loop)
		}
		seen[t.Loop] = true

		if t.Variant == "" {
			manifest.Tracks[i].Variant = geotrack.VariantTrack.String()
		}

		if t.Color == "" {
			manifest.Tracks[i].Color = palette.HexColor(t.Loop)
		}
	}

	return manifest, nil
}
