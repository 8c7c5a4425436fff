package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewGenerateController); err != nil {
		return err
	}
	if err := container.Provide(NewServeController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	generateController *GenerateController,
	serveController *ServeController,
) *[]entities.Controller {
	return &[]entities.Controller{
		generateController,
		serveController,
	}
}
