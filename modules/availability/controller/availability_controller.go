package controller

import (
	"meetbook/core/constants"
	"meetbook/core/controller"
	"meetbook/core/errors"
	"meetbook/core/utils"
	"meetbook/modules/availability/dto"
	"meetbook/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

func (c *AvailabilityController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims.UserID, nil
}

// Declare handles POST /private/availability
func (c *AvailabilityController) Declare(ctx echo.Context) error {
	hostID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.DeclareAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.Declare(ctx.Request().Context(), hostID, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability declared")
}

// GetMyAvailability handles GET /private/availability
func (c *AvailabilityController) GetMyAvailability(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AvailabilityService.GetMyAvailability(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability loaded")
}
