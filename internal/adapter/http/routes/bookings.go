package routes

import (
	"monhajj/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addBookingRoutes(rg *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, intentHandler *handlers.PaymentIntentHandler, depositHandler *handlers.DepositPaymentHandler) {
	rg.POST(PathPaymentIntents, intentHandler.CreatePaymentIntent)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:booking_id", depositHandler.CreateDepositPayment)
		payments.GET("/:booking_id", depositHandler.GetDepositPayment)
	}
}
