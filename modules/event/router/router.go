package router

import (
	"meetbook/core/middleware"
	"meetbook/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	Controller *controller.EventController
}

func NewEventRouter(ctrl *controller.EventController) *EventRouter {
	return &EventRouter{Controller: ctrl}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())
	priv.POST("/events", r.Controller.Create)
	priv.GET("/events", r.Controller.List)
	priv.POST("/events/:id/register", r.Controller.Register)
	priv.DELETE("/events/:id/register", r.Controller.Unregister)
}
