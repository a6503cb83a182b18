package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pkgdiff/internal"
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// version is set during build using ldflags.
var version = "dev" //nolint:gochecknoglobals // overridden by ldflags

// runWith adapts a controller to a Cobra RunE. Usage errors print the usage
// text; every other failure is left to main to log.
func runWith(controller entities.Controller) func(*cobra.Command, []string) error {
	return func(command *cobra.Command, arguments []string) error {
		command.SilenceUsage = true
		err := controller.Execute(command, arguments)

		var usageErr *entities.UsageError
		if errors.As(err, &usageErr) {
			_ = command.Usage()
		}
		return err
	}
}

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	diffController := appContext.GetRootController()
	bind := diffController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceErrors: true,
		RunE:          runWith(diffController),
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Echo parsed options and arguments, enable debug logging")

	diffController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  runWith(controller),
		}
		controller.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'pkgdiff': %s", err)
	}
}
