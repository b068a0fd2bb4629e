package router

import (
	"meetbook/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	Controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{Controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo) {
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", r.Controller.Register)
	auth.POST("/login", r.Controller.Login)
}
