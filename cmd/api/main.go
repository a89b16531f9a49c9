package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "monhajj/docs"
	"monhajj/internal/adapter/http/handlers"
	"monhajj/internal/adapter/http/routes"
	"monhajj/internal/adapter/persistence/repository"
	"monhajj/internal/config"
	"monhajj/internal/domain/catalog"
	"monhajj/internal/infrastructure/cache"
	"monhajj/internal/infrastructure/database"
	"monhajj/internal/infrastructure/logger"
	"monhajj/internal/infrastructure/payments"
	"monhajj/internal/server"
	"monhajj/internal/usecase"
	"monhajj/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Mon Hajj Booking API
// @version         1.0
// @description     Hajj and Omra catalog, booking wizard and deposit payments backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  contact@monhajj.fr

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.Server.GinMode)
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		zapLogger.Fatal("connecting to dynamodb", zap.Error(err))
	}
	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.DynamoDB.BookingsTable)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	wizardStore, closeStore := newWizardStore(ctx, cfg, zapLogger)
	defer closeStore()

	var intentGateway interfaces.IPaymentIntentGateway
	stripeGateway, err := payments.NewStripeGateway(cfg.Payments, zapLogger)
	if err != nil {
		zapLogger.Warn("stripe gateway not configured", zap.Error(err))
	} else {
		intentGateway = stripeGateway
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, zapLogger)
	if err != nil {
		zapLogger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalog.Default())
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, intentGateway, cfg.Payments.Currency, zapLogger)
	wizardUseCase := usecase.NewWizardUseCase(wizardStore, catalogUseCase, bookingUseCase, zapLogger)
	intentUseCase := usecase.NewPaymentIntentUseCase(intentGateway, cfg.Payments.Currency, zapLogger)
	depositUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, bookingRepo, paymentGateway, cfg.Payments, zapLogger)

	router := routes.NewRouter(routes.Handlers{
		Catalog:        handlers.NewCatalogHandler(catalogUseCase),
		Wizard:         handlers.NewWizardHandler(wizardUseCase),
		Booking:        handlers.NewBookingHandler(bookingUseCase),
		PaymentIntent:  handlers.NewPaymentIntentHandler(intentUseCase, zapLogger),
		DepositPayment: handlers.NewDepositPaymentHandler(depositUseCase, zapLogger),
	}, cfg.Server, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}

func newWizardStore(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (interfaces.IWizardStore, func()) {
	if cfg.Wizard.Store == config.WizardStoreMemory {
		zapLogger.Info("wizard store: memory", zap.Duration("ttl", cfg.Wizard.TTL))
		return repository.NewWizardMemoryStore(cfg.Wizard.TTL), func() {}
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	zapLogger.Info("wizard store: redis", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Wizard.TTL))
	return repository.NewWizardRedisStore(client, cfg.Wizard.TTL), func() { _ = client.Close() }
}
