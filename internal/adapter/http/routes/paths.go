package routes

const (
	PathPing                = "/ping"
	PathOfferings           = "/offerings"
	PathRoomTypes           = "/room-types"
	PathQuotes              = "/quotes"
	PathWizards             = "/wizards"
	PathBookings            = "/bookings"
	PathPayments            = "/payments"
	PathPaymentIntents      = "/payment-intents"
	PathCreatePaymentIntent = "/create-payment-intent"
)
