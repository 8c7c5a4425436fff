package internal

import (
	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/infrastructure/controllers"
)

// AppInternal holds every controller mounted on the CLI.
type AppInternal struct {
	controllers        []entities.Controller
	generateController *controllers.GenerateController
}

// NewAppInternal creates the application root from the registered controllers.
func NewAppInternal(
	controllerList *[]entities.Controller,
	generateController *controllers.GenerateController,
) *AppInternal {
	return &AppInternal{
		controllers:        *controllerList,
		generateController: generateController,
	}
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetGenerateController returns the controller behind the standalone root mode.
func (it *AppInternal) GetGenerateController() *controllers.GenerateController {
	return it.generateController
}
