package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bgraf/trailmap/config"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trailmap",
	Short: "Convert GPX tracks into GeoJSON map layers with elevation profiles",

	// Execute prints the error itself.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	var err error

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trailmap.yaml)")

	rootCmd.PersistentFlags().StringP("tracks", "t", config.DefaultManifestFile(), "Track manifest file")
	err = viper.BindPFlag(
		config.KeyManifest,
		rootCmd.PersistentFlags().Lookup("tracks"),
	)
	if err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// readConfig reads the config file given by --config, or a ".trailmap" file
// from the working or home directory if there is one. Only an explicitly
// given file is required to exist.
func readConfig(v *viper.Viper, configFile string) error {
	config.BindEnv(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		if dir, err := os.Getwd(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(home)
		v.SetConfigName(".trailmap")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config file: %w", err)
			}
			return nil
		}
	}

	fmt.Println("Using config file:", v.ConfigFileUsed())
	return nil
}
