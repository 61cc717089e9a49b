// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"kitis-shop/cart"
	"kitis-shop/checkout"
	"kitis-shop/config"
	"kitis-shop/controllers"
	"kitis-shop/middleware"
	"kitis-shop/models"
	"kitis-shop/pricing"
	"kitis-shop/routes"
	"kitis-shop/storage"
	"kitis-shop/utils"
)

// toastNotifier is the server-side stand-in for the storefront toast.
type toastNotifier struct {
	log *zap.Logger
}

func (n *toastNotifier) Notify(message string) {
	n.log.Info("toast", zap.String("message", message))
}

// logTransport is the ORDER_SENDER=none transport for local runs: it
// records the order instead of emailing it.
type logTransport struct {
	log *zap.Logger
}

func (t *logTransport) Send(_ context.Context, payload *models.OrderPayload) error {
	t.log.Info("order composed (no sender configured)",
		zap.String("reference", payload.Reference),
		zap.String("subject", payload.Subject),
		zap.String("subtotal", payload.Subtotal.StringFixed(2)),
	)
	return nil
}

func newStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.CartBackend {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.DataDir)
	case "redis":
		return storage.NewRedis(ctx, cfg.RedisURL)
	case "mongo":
		return storage.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.CartBackend)
	}
}

func newTransport(cfg config.Config, logger *zap.Logger) (checkout.Transport, error) {
	switch cfg.OrderSender {
	case "none":
		return &logTransport{log: logger}, nil
	case "postmark":
		return checkout.NewPostmarkSender(cfg.PostmarkAPI, cfg.EmailSender, cfg.OrderTo)
	case "smtp":
		return checkout.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.OrderTo)
	case "sendgrid":
		return checkout.NewSendGridSender(cfg.SendGridAPI, cfg.EmailSender, cfg.OrderTo)
	default:
		return nil, fmt.Errorf("unknown order sender %q", cfg.OrderSender)
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}
	cfg := config.Load()

	logger, err := utils.InitLogger(cfg.Env)
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	store, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatal("could not set up cart storage", zap.Error(err))
	}

	transport, err := newTransport(cfg, logger)
	if err != nil {
		logger.Fatal("could not set up order transport", zap.Error(err))
	}

	catalog := models.DefaultCatalog()
	cartStore := cart.NewStore(store, logger,
		cart.WithKey(cfg.CartKey),
		cart.WithNotifier(&toastNotifier{log: logger}),
	)
	projector := &pricing.Projector{Catalog: catalog}
	service := &checkout.Service{
		Composer:  &checkout.Composer{StoreName: cfg.StoreName},
		Transport: transport,
	}

	// Initialize controllers
	productController := controllers.NewProductController(catalog, cartStore, logger)
	cartController := controllers.NewCartController(cartStore, projector, logger)
	checkoutController := controllers.NewCheckoutController(cartStore, projector, service, cfg.OrderTo, logger)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, productController, cartController, checkoutController)
	router.Use(middleware.RequestLogger(logger))

	logger.Info("server is running", zap.String("port", cfg.Port), zap.String("backend", cfg.CartBackend))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
