package routes

import (
	"net/http"
	"time"

	_ "monhajj/docs"
	"monhajj/internal/adapter/http/handlers"
	"monhajj/internal/adapter/http/middleware"
	"monhajj/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Catalog        *handlers.CatalogHandler
	Wizard         *handlers.WizardHandler
	Booking        *handlers.BookingHandler
	PaymentIntent  *handlers.PaymentIntentHandler
	DepositPayment *handlers.DepositPaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger and every route.
func NewRouter(h Handlers, cfg config.ServerConfig, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, forwarding headers ignored", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Path the card form has always posted to.
	router.POST(PathCreatePaymentIntent, h.PaymentIntent.CreatePaymentIntent)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addWizardRoutes(v1, h.Wizard)
	addBookingRoutes(v1, h.Booking)
	addPaymentRoutes(v1, h.PaymentIntent, h.DepositPayment)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.ServerConfig, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}
