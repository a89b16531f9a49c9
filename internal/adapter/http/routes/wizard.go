package routes

import (
	"monhajj/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	wizards := rg.Group(PathWizards)
	{
		wizards.POST("", h.CreateWizard)
		wizards.GET("/:id", h.GetWizard)

		// Commands are only honoured on the steps that own the field.
		wizards.PUT("/:id/offering", h.SelectOffering)
		wizards.PUT("/:id/room-type", h.SelectRoomType)
		wizards.PUT("/:id/travelers", h.SetTravelers)
		wizards.PUT("/:id/clients/:index", h.UpdateClient)
		wizards.PUT("/:id/payment-option", h.SelectPaymentOption)

		wizards.POST("/:id/advance", h.Advance)
		wizards.POST("/:id/retreat", h.Retreat)
	}
}
