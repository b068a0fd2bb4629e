package booking

import (
	"meetbook/core/cache"
	"meetbook/core/database"
	"meetbook/core/middleware"
	availRepository "meetbook/modules/availability/repository"
	"meetbook/modules/booking/controller"
	"meetbook/modules/booking/repository"
	"meetbook/modules/booking/router"
	"meetbook/modules/booking/service"
	"meetbook/modules/notification/tasks"
	userRepository "meetbook/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, enqueuer tasks.EnqueuerInterface) {
	repo := repository.NewBookingRepository(db)
	ledger := availRepository.NewAvailabilityRepository(db)
	users := userRepository.NewUserRepository(db)
	svc := service.NewBookingService(db, repo, ledger, users, cache, enqueuer)
	ctrl := controller.NewBookingController(svc)
	mw := middleware.NewMiddleware()
	router.NewBookingRouter(ctrl).Setup(e, mw)
}
