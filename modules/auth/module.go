package auth

import (
	"meetbook/core/database"
	"meetbook/modules/auth/controller"
	"meetbook/modules/auth/router"
	"meetbook/modules/auth/service"
	userRepository "meetbook/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase) {
	users := userRepository.NewUserRepository(db)
	svc := service.NewAuthService(users)
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e)
}
