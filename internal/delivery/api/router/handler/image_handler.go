package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/response"
	deliverycontext "enginex/internal/delivery/context"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying the photo.
const imageFormField = "file"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler accepts listing photo uploads.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// DeleteImageRequest names the uploaded image to remove.
type DeleteImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// UploadImage stores a multipart photo and returns its public URL.
func (h *ImageHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   imageFormField,
			Rule:    "required",
			Message: "a multipart image file is required",
		}))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUnsupportedImage.WrapMessage(err.Error()))
	}
	defer file.Close()

	url, err := h.imageUC.UploadImage(c.Request().Context(), deliverycontext.GetSession(c), &usecase.UploadImageInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}

// DeleteImage removes a photo previously uploaded.
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	var req DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.imageUC.DeleteImage(c.Request().Context(), deliverycontext.GetSession(c), req.URL); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
