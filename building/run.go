package building

import (
	"fmt"
	"io"

	"github.com/bgraf/trailmap/config"
	"github.com/bgraf/trailmap/filesystem"
	"github.com/bgraf/trailmap/geotrack"
	"github.com/bgraf/trailmap/render"
	"github.com/bgraf/trailmap/trail"
)

// TrackError attributes a failure to the track it happened in.
type TrackError struct {
	Loop string
	Err  error
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("track '%s': %v", e.Loop, e.Err)
}

func (e *TrackError) Unwrap() error {
	return e.Err
}

type Options struct {
	BuildDirectory string
	// KeepGoing reports a failing track and continues with the next one
	// instead of aborting the run.
	KeepGoing     bool
	Simplify      trail.SimplifyOptions
	ProfilePoints int
}

func DefaultOptions() Options {
	return Options{
		BuildDirectory: config.DefaultBuildDirectory(),
		Simplify:       trail.DefaultSimplifyOptions(),
		ProfilePoints:  trail.DefaultProfilePoints,
	}
}

// Build converts tracks one after another in the given order and writes one
// GeoJSON file per track into opts.BuildDirectory. Progress is written to
// out. Failed tracks never leave an output file behind.
//
// Without opts.KeepGoing the first failure ends the run and is returned
// together with the results so far. With opts.KeepGoing failures are only
// recorded in the results.
func Build(tracks []config.Track, opts Options, out io.Writer) ([]render.TrackResult, error) {
	if err := filesystem.CreateDirectoryIfNotExists(opts.BuildDirectory); err != nil {
		return nil, fmt.Errorf("could not ensure build directory: %w", err)
	}

	var results []render.TrackResult

	for _, track := range tracks {
		record, err := processTrack(track, opts, out)
		if err != nil {
			err = &TrackError{Loop: track.Loop, Err: err}
			fmt.Fprintf(out, "  FAILED: %v\n", err)

			results = append(results, render.TrackResult{Label: track.Label, Err: err})
			if !opts.KeepGoing {
				return results, err
			}
			continue
		}

		results = append(results, render.TrackResult{Label: track.Label, Record: &record})
	}

	return results, nil
}

// Failed returns the number of failed results.
func Failed(results []render.TrackResult) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

func processTrack(track config.Track, opts Options, out io.Writer) (render.Record, error) {
	fmt.Fprintf(out, "Processing %s...\n", track.Loop)

	record, err := convertTrack(track, opts, out)
	if err != nil {
		return render.Record{}, err
	}

	outPath, size, err := render.WriteGeoJSON(opts.BuildDirectory, record)
	if err != nil {
		return render.Record{}, err
	}
	fmt.Fprintf(out, "  Wrote %s (%d KB)\n", outPath, roundKB(size))

	return record, nil
}

// convertTrack runs the pure part of the pipeline for one track.
func convertTrack(track config.Track, opts Options, out io.Writer) (render.Record, error) {
	variant, err := geotrack.ParseVariant(track.Variant)
	if err != nil {
		return render.Record{}, err
	}

	raw, err := geotrack.LoadTrack(track.Path, variant)
	if err != nil {
		return render.Record{}, err
	}
	fmt.Fprintf(out, "  Raw points: %d\n", len(raw))

	if len(raw) == 0 {
		return render.Record{}, &trail.DataError{Err: fmt.Errorf("no <%spt> elements in %s: %w", variant, track.Path, trail.ErrNoSamples)}
	}

	deduped := geotrack.Dedup(raw)
	fmt.Fprintf(out, "  After dedup: %d\n", len(deduped))

	stats, err := trail.ComputeStats(deduped)
	if err != nil {
		return render.Record{}, err
	}
	fmt.Fprintf(out, "  Distance: %s mi, Gain: %d ft\n", render.FormatNumber(stats.DistanceMi), stats.GainFt)

	profile := trail.ThinProfile(trail.BuildProfile(deduped), opts.ProfilePoints)
	fmt.Fprintf(out, "  Profile points: %d\n", len(profile))

	simplified := trail.SimplifyIfLarge(deduped, opts.Simplify)
	fmt.Fprintf(out, "  Simplified: %d points\n", len(simplified))

	return render.NewRecord(track, stats, simplified, profile), nil
}

func roundKB(size int) int {
	return (size + 512) / 1024
}

