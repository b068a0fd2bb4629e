package router

import (
	"meetbook/core/middleware"
	"meetbook/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	Controller *controller.UserController
}

func NewUserRouter(ctrl *controller.UserController) *UserRouter {
	return &UserRouter{Controller: ctrl}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())
	priv.GET("/users/me", r.Controller.GetMe)
	priv.PUT("/users/me/photo", r.Controller.UploadPhoto)
}
