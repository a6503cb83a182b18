package internal

import (
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs once the container is resolved.
type AppInternal struct {
	diffController *controllers.DiffController
	controllers    []entities.Controller
}

// NewAppInternal creates the application context from its controllers.
func NewAppInternal(
	diffController *controllers.DiffController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		diffController: diffController,
		controllers:    *subcommands,
	}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.DiffController {
	return it.diffController
}

// GetControllers returns the controllers bound to subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
