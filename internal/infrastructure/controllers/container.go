package controllers

import (
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewDiffController); err != nil {
		return err
	}
	if err := container.Provide(NewFlattenController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the
// AppInternal. The diff controller is bound to the root command instead.
func NewControllers(
	flattenController *FlattenController,
) *[]entities.Controller {
	return &[]entities.Controller{
		flattenController,
	}
}
