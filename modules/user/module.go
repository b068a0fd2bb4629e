package user

import (
	"meetbook/core/database"
	"meetbook/core/middleware"
	"meetbook/core/storage"
	"meetbook/modules/user/controller"
	"meetbook/modules/user/repository"
	"meetbook/modules/user/router"
	"meetbook/modules/user/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, uploader storage.Uploader) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, uploader)
	ctrl := controller.NewUserController(svc)
	mw := middleware.NewMiddleware()
	router.NewUserRouter(ctrl).Setup(e, mw)
}
