package calendar

import (
	"meetbook/core/cache"
	"meetbook/core/database"
	"meetbook/core/middleware"
	"meetbook/modules/calendar/controller"
	"meetbook/modules/calendar/repository"
	"meetbook/modules/calendar/router"
	"meetbook/modules/calendar/service"
	eventRepository "meetbook/modules/event/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache) {
	repo := repository.NewCalendarRepository(db)
	events := eventRepository.NewEventRepository(db)
	svc := service.NewCalendarService(repo, events, cache)
	ctrl := controller.NewCalendarController(svc)
	mw := middleware.NewMiddleware()
	router.NewCalendarRouter(ctrl).Setup(e, mw)
}
