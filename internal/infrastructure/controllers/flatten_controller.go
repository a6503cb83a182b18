package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pkgdiff/internal/domain/commands"
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// FlattenController handles the "flatten" subcommand (single-file mode).
type FlattenController struct {
	command commands.Flatten
}

// NewFlattenController creates a new FlattenController.
func NewFlattenController(command commands.Flatten) *FlattenController {
	return &FlattenController{command: command}
}

// GetBind returns the Cobra command metadata for the flatten controller.
func (it *FlattenController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "flatten",
		Short: "Print the flattened key paths of one JSON document",
		Long: `Flatten one JSON document into dot-separated key paths and print
one "path = value" line per leaf, in document order.`,
	}
}

// AddFlags adds the flatten-specific flags to the given Cobra command.
func (it *FlattenController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Path to the JSON document")
	_ = cmd.MarkFlagRequired("file")
}

// Execute flattens the file given with --file.
func (it *FlattenController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	applyVerbose(cmd, args)

	file, _ := cmd.Flags().GetString("file")
	_, err := it.command.Execute(ctx, commands.FlattenOptions{
		File:   file,
		Output: cmd.OutOrStdout(),
	})
	return err
}
