package routes

import (
	"monhajj/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	offerings := rg.Group(PathOfferings)
	{
		offerings.GET("", h.ListOfferings)
		offerings.GET("/:id", h.GetOffering)
	}

	rg.GET(PathRoomTypes, h.ListRoomTypes)
	rg.POST(PathQuotes, h.CreateQuote)
}
