package cmd

import (
	"fmt"
	"io"

	"github.com/bgraf/trailmap/config"
	"github.com/bgraf/trailmap/filesystem"
	"github.com/bgraf/trailmap/geotrack"
	"github.com/bgraf/trailmap/render"
	"github.com/bgraf/trailmap/trail"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats PATH...",
	Short: "Print statistics and extent of GPX files without writing output",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("variant", "trk", "GPX point element to read (trk or rte)")
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	variantName, err := cmd.Flags().GetString("variant")
	if err != nil {
		return err
	}

	variant, err := geotrack.ParseVariant(variantName)
	if err != nil {
		return err
	}

	paths, err := filesystem.GatherFiles(args, config.GPXExtensions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		if err := printTrackStats(out, p, variant); err != nil {
			return err
		}
	}

	return nil
}

func printTrackStats(out io.Writer, trackPath string, variant geotrack.Variant) error {
	raw, err := geotrack.LoadTrack(trackPath, variant)
	if err != nil {
		return err
	}

	deduped := geotrack.Dedup(raw)

	stats, err := trail.ComputeStats(deduped)
	if err != nil {
		return fmt.Errorf("%s: %w", trackPath, err)
	}

	ext, _ := geotrack.Bounds(deduped)

	fmt.Fprintf(out, "%s\n", trackPath)
	fmt.Fprintf(out, "  Points: %d (%d after dedup)\n", len(raw), len(deduped))
	fmt.Fprintf(out, "  Distance: %s mi\n", render.FormatNumber(stats.DistanceMi))
	fmt.Fprintf(out, "  Elevation: +%d/-%d ft, %d-%d ft\n", stats.GainFt, stats.LossFt, stats.MinEleFt, stats.MaxEleFt)
	fmt.Fprintf(out, "  Bounds: [%.4f, %.4f] to [%.4f, %.4f]\n",
		ext.Bound.Min.Lon(), ext.Bound.Min.Lat(), ext.Bound.Max.Lon(), ext.Bound.Max.Lat())
	fmt.Fprintf(out, "  Center: [%.4f, %.4f]\n", ext.Center.Lon(), ext.Center.Lat())
	fmt.Fprintf(out, "  Start: [%.5f, %.5f], End: [%.5f, %.5f]\n",
		ext.Start.Lon(), ext.Start.Lat(), ext.End.Lon(), ext.End.Lat())

	return nil
}
