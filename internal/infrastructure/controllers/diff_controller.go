package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pkgdiff/internal/domain/commands"
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// DiffController handles the root command: pkgdiff [files or directories...].
type DiffController struct {
	command  commands.Diff
	defaults *entities.Settings
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff, defaults *entities.Settings) *DiffController {
	return &DiffController{command: command, defaults: defaults}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pkgdiff [OPTIONS] [files or directories...]",
		Short: "Compare dependency versions across package.json files",
		Long: `Compare the dependency declarations of several package.json files and
report every package that is declared at more than one version, together
with the files (and dependency sections) each version comes from. A directory
argument stands for every package.json beneath it, outside node_modules.

Examples:
  pkgdiff app/package.json lib/package.json
  pkgdiff packages/
  pkgdiff --group normal,dev --group peer */package.json
  pkgdiff --format json --highest a/package.json b/package.json`,
	}
}

// AddFlags adds the diff-specific flags to the given Cobra command.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("group", nil,
		"Comma-separated categories reported together (normal, dev, peer, optional); repeatable")
	cmd.Flags().String("format", "", "Output format: text or json (default from config, else text)")
	cmd.Flags().Bool("skip-malformed", false, "Skip manifests that are not valid JSON objects instead of failing")
	cmd.Flags().Bool("highest", false, "Show the highest exact version of each differing package")
}

// Execute runs the comparison over the given files.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	applyVerbose(cmd, args)

	settings, err := loadSettings(cmd, it.defaults)
	if err != nil {
		return err
	}

	rawGroups, _ := cmd.Flags().GetStringArray("group")
	format, _ := cmd.Flags().GetString("format")
	skipMalformed, _ := cmd.Flags().GetBool("skip-malformed")
	highest, _ := cmd.Flags().GetBool("highest")

	groups := make([][]entities.Category, 0, len(rawGroups))
	for _, raw := range rawGroups {
		categories, parseErr := entities.ParseCategoryList(raw)
		if parseErr != nil {
			return &entities.UsageError{Reason: parseErr.Error()}
		}
		groups = append(groups, categories)
	}

	_, err = it.command.Execute(ctx, settings, commands.DiffOptions{
		Files:         args,
		Groups:        groups,
		Format:        format,
		SkipMalformed: skipMalformed,
		ShowHighest:   highest,
		Output:        cmd.OutOrStdout(),
	})
	return err
}
