package handlers

import (
	"context"
	"errors"
	"net/http"

	request "clima_hogar/internal/adapter/http/dto/request"
	response "clima_hogar/internal/adapter/http/dto/response"
	"clima_hogar/internal/usecase"
	"clima_hogar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGalleryPayload = pkg.NewDomainErrorSimple("INVALID_GALLERY_INPUT", "Invalid gallery payload", http.StatusBadRequest)
)

// GalleryHandler drives the per-session image modal state machine.

type GalleryHandler struct {
	usecase usecase.IGalleryUseCase
}

func NewGalleryHandler(uc usecase.IGalleryUseCase) *GalleryHandler {
	return &GalleryHandler{usecase: uc}
}

// OpenGallery opens the modal on an item's first image. Items without images
// answer 422; the UI never shows the zoom affordance for them.
func (h *GalleryHandler) OpenGallery(c *gin.Context) {
	var payload request.GalleryOpenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	itemID := payload.ResolveItemID()
	if itemID == "" {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Open(c.Request.Context(), c.Param("session_id"), itemID)
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGalleryView(view))
}

func (h *GalleryHandler) NextImage(c *gin.Context) {
	h.navigate(c, h.usecase.Next)
}

func (h *GalleryHandler) PreviousImage(c *gin.Context) {
	h.navigate(c, h.usecase.Previous)
}

func (h *GalleryHandler) JumpToImage(c *gin.Context) {
	var payload request.GalleryJumpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}
	index, err := payload.ResolveIndex()
	if err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.JumpTo(c.Request.Context(), c.Param("session_id"), index)
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGalleryView(view))
}

func (h *GalleryHandler) CloseGallery(c *gin.Context) {
	h.navigate(c, h.usecase.Close)
}

func (h *GalleryHandler) GetGallery(c *gin.Context) {
	h.navigate(c, h.usecase.Current)
}

func (h *GalleryHandler) navigate(
	c *gin.Context,
	op func(ctx context.Context, sessionID string) (usecase.GalleryView, error),
) {
	view, err := op(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGalleryView(view))
}

func mapGalleryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGalleryEmpty):
		return pkg.NewDomainErrorSimple("GALLERY_EMPTY", "Item has no gallery images", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGalleryClosed):
		return pkg.NewDomainErrorSimple("GALLERY_CLOSED", "Gallery is not open", http.StatusConflict)
	case errors.Is(err, usecase.ErrGalleryIndexRange):
		return pkg.NewDomainErrorSimple("GALLERY_INDEX_RANGE", "Gallery index out of range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
