package cmd

import (
	"fmt"
	"log"

	"github.com/bgraf/trailmap/building"
	"github.com/bgraf/trailmap/config"
	"github.com/bgraf/trailmap/filesystem"
	"github.com/bgraf/trailmap/render"
	"github.com/bgraf/trailmap/trail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Convert every track of the manifest into a GeoJSON file",
	Long: `Build reads the tracks listed in the manifest one after another and
writes <loop>.geojson for each of them into the build directory, followed by
a summary of all tracks.`,
	Args: cobra.NoArgs,
	RunE: runBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", config.DefaultBuildDirectory(), "Build directory")
	buildCmd.Flags().Bool("keep-going", false, "Report failing tracks and continue with the next one")
	buildCmd.Flags().Float64("min-separation", config.DefaultMinSeparation(), "Minimum distance in meters between simplified points")
	buildCmd.Flags().Int("simplify-above", config.DefaultSimplifyAbove(), "Simplify tracks with more points than this")
	buildCmd.Flags().Int("profile-points", config.DefaultProfilePoints(), "Maximum number of elevation profile points")

	for key, flag := range map[string]string{
		config.KeyBuildDirectory: "output",
		config.KeyKeepGoing:      "keep-going",
		config.KeyMinSeparation:  "min-separation",
		config.KeySimplifyAbove:  "simplify-above",
		config.KeyProfilePoints:  "profile-points",
	} {
		if err := viper.BindPFlag(key, buildCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runBuildCmd(cmd *cobra.Command, args []string) error {
	manifest, err := config.LoadManifest(config.ManifestFile())
	if err != nil {
		return err
	}

	opts := building.Options{
		BuildDirectory: filesystem.Abs(config.BuildDirectory()),
		KeepGoing:      config.KeepGoing(),
		Simplify: trail.SimplifyOptions{
			MinSeparationM: config.MinSeparation(),
			Above:          config.SimplifyAbove(),
		},
		ProfilePoints: config.ProfilePoints(),
	}

	log.Printf("build directory: %s", opts.BuildDirectory)

	out := cmd.OutOrStdout()

	results, err := building.Build(manifest.Tracks, opts, out)
	render.Summary(out, results)
	if err != nil {
		return err
	}

	if n := building.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d tracks failed", n, len(results))
	}

	return nil
}
