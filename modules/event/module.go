package event

import (
	"meetbook/core/cache"
	"meetbook/core/database"
	"meetbook/core/middleware"
	"meetbook/modules/event/controller"
	"meetbook/modules/event/repository"
	"meetbook/modules/event/router"
	"meetbook/modules/event/service"
	userRepository "meetbook/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache) {
	repo := repository.NewEventRepository(db)
	users := userRepository.NewUserRepository(db)
	svc := service.NewEventService(repo, users, cache)
	ctrl := controller.NewEventController(svc)
	mw := middleware.NewMiddleware()
	router.NewEventRouter(ctrl).Setup(e, mw)
}
