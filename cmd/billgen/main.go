package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vertexlabs/billgen/internal/application/service"
	"github.com/vertexlabs/billgen/internal/config"
	"github.com/vertexlabs/billgen/internal/infrastructure/raster"
	"github.com/vertexlabs/billgen/internal/infrastructure/source"
	"github.com/vertexlabs/billgen/internal/presentation/http/handler"
	"github.com/vertexlabs/billgen/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	receiptService := service.NewReceiptService(cfg.Receipt, nil)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServer(cfg, receiptService)
		return
	}

	// Default mode: batch-generate receipts from the configured CSV
	// export, then rasterize them for downstream display.
	batch := service.NewBatchService(
		cfg,
		source.NewCSVSource(),
		receiptService,
		raster.NewFitzRasterizer(),
	)
	if err := batch.Run(); err != nil {
		log.Fatalf("Batch generation failed: %v", err)
	}
}

func runServer(cfg *config.Config, receiptService *service.ReceiptService) {
	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := &routes.Handlers{
		Receipt: handler.NewReceiptHandler(receiptService, cfg),
	}

	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	log.Printf("Starting %s server on port %s...", cfg.App.Name, cfg.App.Port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
