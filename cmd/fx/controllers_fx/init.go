package controllers_fx

import (
	"go.uber.org/fx"

	"safesteps/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPageController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewChecklistController),
	fx.Provide(controllers.NewContactsController))
