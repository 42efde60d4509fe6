package handlers

import (
	"net/http"

	"clima_hogar/internal/adapter/http/dto/response"
	"clima_hogar/internal/usecase"
	"clima_hogar/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler hands out UI sessions. A session owns the visitor's quote
// form, gallery selection and submission state; nothing outlives the process.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.SessionResponse{SessionID: id})
}
