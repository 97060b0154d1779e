package main

import (
	"context"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medbill-api/internal/application/service"
	"github.com/sangkips/medbill-api/internal/config"
	"github.com/sangkips/medbill-api/internal/domain/entity"
	domainRepo "github.com/sangkips/medbill-api/internal/domain/repository"
	"github.com/sangkips/medbill-api/internal/infrastructure/database"
	"github.com/sangkips/medbill-api/internal/infrastructure/repository"
	"github.com/sangkips/medbill-api/internal/presentation/http/handler"
	"github.com/sangkips/medbill-api/internal/presentation/http/routes"
	"github.com/sangkips/medbill-api/pkg/metrics"
	"github.com/sangkips/medbill-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the store details storage
	storeRepo, closer, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	registry := metrics.NewRegistry()

	// Initialize services
	storeService := service.NewStoreDetailsService(storeRepo, defaultStoreDetails(cfg.Bill), cfg.Bill.DebounceWindow, registry)
	storeService.Init(context.Background())
	defer storeService.Close()

	billService := service.NewBillService(storeService, cfg.Bill, registry)
	defer billService.Close()

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, cfg.Printer.Width, registry)

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill:         handler.NewBillHandler(billService),
		StoreDetails: handler.NewStoreDetailsHandler(storeService),
		Printer:      handler.NewPrinterHandler(printerService, billService),
	}

	rateLimiter := routes.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:         cfg,
		Metrics:     registry,
		RateLimiter: rateLimiter,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, storage: %s", cfg.App.Env, cfg.Storage.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Printf("Failed to start server: %v", err)
	}
}

// openStorage picks the store details backend. The returned closer may be nil.
func openStorage(cfg *config.Config) (domainRepo.StoreDetailsRepository, io.Closer, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return repository.NewStoreDetailsRepository(db), sqlDB, nil
	case "memory":
		log.Printf("Warning: store details are kept in memory and lost on restart")
		return repository.NewMemoryStoreDetailsRepository(), nil, nil
	default:
		db, err := database.NewPebbleDB(cfg.Storage.PebblePath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPebbleStoreDetailsRepository(db), db, nil
	}
}

func defaultStoreDetails(cfg config.BillConfig) entity.StoreDetails {
	return entity.StoreDetails{
		StoreName:     cfg.StoreName,
		StoreAddress:  cfg.StoreAddress,
		StoreSubtitle: cfg.StoreSubtitle,
		Jurisdiction:  cfg.Jurisdiction,
		DLNumber:      cfg.DLNumber,
		GSTNumber:     cfg.GSTNumber,
	}
}
