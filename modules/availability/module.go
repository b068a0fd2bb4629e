package availability

import (
	"meetbook/core/database"
	"meetbook/core/middleware"
	"meetbook/modules/availability/controller"
	"meetbook/modules/availability/repository"
	"meetbook/modules/availability/router"
	"meetbook/modules/availability/service"
	userRepository "meetbook/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewAvailabilityRepository(db)
	users := userRepository.NewUserRepository(db)
	svc := service.NewAvailabilityService(db, repo, users)
	ctrl := controller.NewAvailabilityController(svc)
	mw := middleware.NewMiddleware()
	router.NewAvailabilityRouter(ctrl).Setup(e, mw)
}
