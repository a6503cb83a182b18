package controllers

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// loadSettings returns the settings from --config, from a discovered config
// file, or the defaults when neither exists.
func loadSettings(cmd *cobra.Command, defaults *entities.Settings) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return defaults, nil
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// applyVerbose raises the log level and echoes the parsed options and
// arguments when --verbose is set.
func applyVerbose(cmd *cobra.Command, args []string) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return false
	}
	logger.SetLevel(logger.DebugLevel)

	var opts []string
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		opts = append(opts, fmt.Sprintf("%s: %s", flag.Name, flag.Value.String()))
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# opts: { %s }\n", strings.Join(opts, ", "))
	fmt.Fprintf(out, "# args: %v\n", args)
	return true
}
