package router

import (
	"meetbook/core/middleware"
	"meetbook/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())
	priv.POST("/meetings/book", r.Controller.Book)
	priv.GET("/meetings/:id", r.Controller.GetMeeting)
}
