// Command skywatch computes apparent positions of celestial bodies and the
// times of astronomical events (rise/set, lunar phases, seasons,
// conjunctions) for a configured observer.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/internal/log"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/ephem"
	"github.com/chrissnell/skywatch/pkg/frame"
)

var (
	cfgFile   string
	debug     bool
	latFlag   float64
	lonFlag   float64
	heightM   float64
	tolerance float64
	timeFlag  string
)

var rootCmd = &cobra.Command{
	Use:     "skywatch",
	Short:   "Celestial positions and event times",
	Version: constants.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return loadConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.skywatch.yaml)")
	pf.BoolVar(&debug, "debug", false, "turn on debugging output")
	pf.Float64Var(&latFlag, "lat", 0, "observer latitude, degrees north")
	pf.Float64Var(&lonFlag, "lon", 0, "observer longitude, degrees east")
	pf.Float64Var(&heightM, "height", 0, "observer height above the ellipsoid, meters")
	pf.Float64Var(&tolerance, "tolerance", 1.0, "event time tolerance, seconds")
	pf.StringVar(&timeFlag, "time", "", "UTC time (RFC3339), default now")
}

// loadConfig merges the optional viper config file under the flag values;
// explicitly set flags always win.
func loadConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".skywatch")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // config file is optional
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	if !cmd.Flags().Changed("lat") && viper.IsSet("latitude") {
		latFlag = viper.GetFloat64("latitude")
	}
	if !cmd.Flags().Changed("lon") && viper.IsSet("longitude") {
		lonFlag = viper.GetFloat64("longitude")
	}
	if !cmd.Flags().Changed("height") && viper.IsSet("height") {
		heightM = viper.GetFloat64("height")
	}
	if !cmd.Flags().Changed("tolerance") && viper.IsSet("tolerance") {
		tolerance = viper.GetFloat64("tolerance")
	}
	return nil
}

// observer builds and validates the observer location from flags/config.
func observer() (frame.Observer, error) {
	obs := frame.Observer{LatDeg: latFlag, LonDeg: lonFlag, HeightM: heightM}
	if err := obs.Validate(); err != nil {
		return frame.Observer{}, err
	}
	return obs, nil
}

// startTime parses the --time flag, defaulting to the current instant.
func startTime() (astrotime.Instant, error) {
	if timeFlag == "" {
		return astrotime.FromTime(time.Now().UTC()), nil
	}
	t, err := time.Parse(time.RFC3339, timeFlag)
	if err != nil {
		return astrotime.Instant{}, fmt.Errorf("error parsing --time: %w", err)
	}
	return astrotime.FromTime(t), nil
}

// provider returns the orbital model shared by all subcommands.
func provider() frame.Provider {
	return ephem.NewModel()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
