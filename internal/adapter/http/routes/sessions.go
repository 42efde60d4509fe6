package routes

import (
	"clima_hogar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
)

func addSessionRoutes(
	rg *gin.RouterGroup,
	sessionHandler *handlers.SessionHandler,
	quoteHandler *handlers.QuoteHandler,
	galleryHandler *handlers.GalleryHandler,
) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)

		quote := sessions.Group("/:session_id/quote")
		{
			quote.PATCH("", quoteHandler.UpdateQuote)
			quote.POST("/equipment-reference", quoteHandler.ApplyEquipmentReference)
			quote.GET("/preview", quoteHandler.PreviewQuote)
			quote.POST("/submit", quoteHandler.SubmitQuote)
		}

		gallery := sessions.Group("/:session_id/gallery")
		{
			gallery.GET("", galleryHandler.GetGallery)
			gallery.POST("/open", galleryHandler.OpenGallery)
			gallery.POST("/next", galleryHandler.NextImage)
			gallery.POST("/previous", galleryHandler.PreviousImage)
			gallery.POST("/jump", galleryHandler.JumpToImage)
			gallery.POST("/close", galleryHandler.CloseGallery)
		}
	}
}
