package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/classrepos/internal"
	"github.com/rios0rios0/classrepos/internal/infrastructure/controllers"
)

func injectProvisionController() *controllers.ProvisionController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var provisionController *controllers.ProvisionController
	if err := container.Invoke(func(pc *controllers.ProvisionController) {
		provisionController = pc
	}); err != nil {
		panic(err)
	}

	return provisionController
}
