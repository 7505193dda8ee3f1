package controllers_fx

import (
	"go.uber.org/fx"

	"wander/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewMediaController),
	fx.Provide(controllers.NewAccountController))
