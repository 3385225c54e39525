package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	. "github.com/VitaBrrevis/orders-export/internal"
)

func main() {
	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	source := NewShopifyClient(cfg.ShopDomain, cfg.APIVersion, cfg.AdminAPIToken, sugaredLogger)
	service := NewService(source, cfg.AdminKey, cfg.JWTSecret, cfg.PageSize, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	api.Post("/session", handlers.CreateSession)

	orders := api.Group("/orders", handlers.RequireSession)
	orders.Get("/", handlers.GetOrders)
	orders.Post("/export", handlers.ExportOrders)

	go sugaredLogger.Fatal(app.Listen(cfg.RunAddress))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
