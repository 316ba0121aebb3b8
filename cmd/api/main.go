package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/config"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/infrastructure/upstream"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/handler"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/middleware"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/routes"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Backend client
	backend := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	catalogService := service.NewCatalogService(backend)
	cartService := service.NewCartService(catalogService)
	sessionService := service.NewSessionService(cartService)
	notifier := service.NewNotifier()
	displayService := service.NewDisplayService()
	receiptService := service.NewReceiptService(entity.ReceiptHeader{
		StoreName: cfg.Receipt.StoreName,
		Address:   cfg.Receipt.Address,
		Phone:     cfg.Receipt.Phone,
	}, thermalPrinter, cfg.Receipt.PaperWidth)
	checkoutService := service.NewCheckoutService(cartService, sessionService, backend, receiptService, displayService)
	scannerService := service.NewScannerService(service.ScanPolicy{
		Terminator:       cfg.Scanner.ScanTerminator(),
		MaxBufferLength:  cfg.Scanner.MaxBufferLength,
		InterCharTimeout: cfg.Scanner.InterCharTimeout,
	}, backend, cartService, notifier)
	statusService := service.NewStatusService(backend, cfg.StatusPoll.Interval)
	qrisService := service.NewQRISService(backend, sessionService, cfg.QRIS.Description)

	// Session bootstrap: seed the offline indicator and warm the catalog
	// cache. Failures degrade to offline mode, they never block startup.
	if boot, err := backend.Init(ctx); err != nil {
		log.Printf("Warning: backend bootstrap failed, starting offline: %v", err)
		statusService.SetOfflineMode(true)
	} else {
		statusService.SetOfflineMode(boot.OfflineMode)
		if boot.Message != "" {
			log.Printf("Backend: %s", boot.Message)
		}
	}
	catalogService.Load(ctx)
	displayService.ShowIdle()

	// Start the connectivity heartbeat
	statusService.Start(ctx)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService, sessionService),
		Session:  handler.NewSessionHandler(sessionService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Display:  handler.NewDisplayHandler(displayService),
		Scanner:  handler.NewScannerHandler(scannerService, notifier),
		Status:   handler.NewStatusHandler(statusService),
		QRIS:     handler.NewQRISHandler(qrisService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:         cfg,
		Idempotency: middleware.NewIdempotencyStore(),
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Backend: %s", cfg.Upstream.BaseURL)

	srv := &http.Server{Addr: ":" + port, Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown: %v", err)
	}

	statusService.Wait()
	displayService.Close()
}
