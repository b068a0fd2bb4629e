package notification

import (
	"meetbook/core/database"
	"meetbook/core/middleware"
	"meetbook/modules/notification/controller"
	"meetbook/modules/notification/repository"
	"meetbook/modules/notification/router"
	"meetbook/modules/notification/service"
	"meetbook/modules/notification/tasks"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init wires the HTTP surface and returns the worker handler for the asynq
// mux owned by the server.
func Init(e *echo.Echo, db database.IDatabase) *tasks.Handler {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	mw := middleware.NewMiddleware()
	router.NewNotificationRouter(ctrl).Setup(e, mw)
	return tasks.NewHandler(svc)
}

// NewEnqueuer builds the producer side used by the booking module.
func NewEnqueuer(client *asynq.Client) tasks.EnqueuerInterface {
	return tasks.NewEnqueuer(client)
}
