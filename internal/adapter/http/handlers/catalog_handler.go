package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"clima_hogar/internal/adapter/http/dto/response"
	"clima_hogar/internal/usecase"
	"clima_hogar/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the equipment catalog view. The catalog is
// best-effort: a dead inventory source still answers 200 with the fallback
// set and errored=true so the page never renders empty.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetCatalog returns the filtered, sorted, paginated catalog view.
//
// Query params: filter (default "all"), page_size (default 6). Increasing
// page_size is the only "load more"; a filter change simply comes in with the
// initial page size again.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	filter := c.DefaultQuery("filter", usecase.FilterAll)

	pageSize := usecase.DefaultPageSize
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_PAGE_SIZE", "Invalid page_size", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		pageSize = n
	}

	items, errored, err := h.usecase.View(c.Request.Context(), filter, pageSize)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response.FromEquipmentItem(item, h.usecase.ImagesFor(item)))
	}
	c.JSON(http.StatusOK, response.FromCatalogView(out, filter, pageSize, errored))
}

// GetFilterOptions returns {"all"} plus the distinct equipment types.
func (h *CatalogHandler) GetFilterOptions(c *gin.Context) {
	options, err := h.usecase.FilterOptions(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FilterOptionsResponse{Options: options})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
