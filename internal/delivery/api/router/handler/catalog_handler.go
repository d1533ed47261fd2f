package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/response"
	"enginex/internal/domain/entity"
	"enginex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the reference data behind the forms and filters.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCategories returns every category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, &CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
			Slug: category.Slug,
			Icon: category.Icon,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// ListEquipmentTypes returns equipment types, narrowed by ?category_id when given.
func (h *CatalogHandler) ListEquipmentTypes(c echo.Context) error {
	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	types, err := h.catalogUC.ListEquipmentTypes(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*EquipmentTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, &EquipmentTypeResponse{
			ID:         t.ID,
			CategoryID: t.CategoryID,
			Name:       t.Name,
			Slug:       t.Slug,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// ListRegions returns the twelve regions in display order.
func (h *CatalogHandler) ListRegions(c echo.Context) error {
	regions := h.catalogUC.ListRegions()
	if regions == nil {
		regions = []entity.Region{}
	}

	return response.Success(c, http.StatusOK, regions)
}
