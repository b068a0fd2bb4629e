package controller

import (
	"io"

	"meetbook/core/constants"
	"meetbook/core/controller"
	"meetbook/core/errors"
	"meetbook/core/utils"
	"meetbook/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 5 MB photo cap.
const maxPhotoBytes = 5 << 20

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

func (c *UserController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetMe handles GET /private/users/me
func (c *UserController) GetMe(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.UserService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Profile loaded")
}

// UploadPhoto handles PUT /private/users/me/photo (multipart form, field "photo")
func (c *UserController) UploadPhoto(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "photo file is required")
	}
	if fileHeader.Size > maxPhotoBytes {
		return c.BadRequest(errors.ErrInvalidInput, "photo exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "cannot read photo file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "cannot read photo file")
	}

	result, appErr := c.UserService.UploadPhoto(
		ctx.Request().Context(), userID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Photo uploaded")
}
