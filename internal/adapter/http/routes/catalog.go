package routes

import (
	"clima_hogar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/filters", catalogHandler.GetFilterOptions)
	}
}
