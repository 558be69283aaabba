package components

import (
	"brainbox-retailplus/internal/handler"
	"brainbox-retailplus/internal/handler/api"
	"brainbox-retailplus/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRewardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
