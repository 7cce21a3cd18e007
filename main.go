package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"aurora/config"
	"aurora/controllers"
	"aurora/storage"
	"aurora/utils"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables; a missing .env just means defaults
	envErr := godotenv.Load()
	cfg := config.LoadEnv()

	logger, err := utils.NewLogger(cfg.Logger, cfg.Server.IsDevelopment())
	if err != nil {
		log.Fatal(utils.ErrorWithTrace(err, "failed to build logger"))
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug("no .env file loaded", zap.Error(envErr))
	}

	rates, err := checkoutRates(cfg.Checkout)
	if err != nil {
		logger.Fatal("invalid checkout configuration", zap.Error(err))
	}

	// The store lives exactly as long as the process
	store := storage.NewMemStore()
	if cfg.Seed {
		store.Seed(storage.SampleProducts())
		logger.Info("sample catalog loaded", zap.Int("products", len(store.GetProducts())))
	}

	ctrl := controllers.New(store, logger, rates)

	corsOptions := handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(logger)),
		handlers.PrintRecoveryStack(cfg.Server.IsDevelopment()),
	)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: recovery(corsOptions(ctrl.Routes())),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr), zap.String("env", cfg.Server.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(utils.ErrorWithTrace(err, err.Error())))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func checkoutRates(cfg config.CheckoutConfig) (controllers.CheckoutRates, error) {
	discount, err := decimal.NewFromString(cfg.DiscountRate)
	if err != nil {
		return controllers.CheckoutRates{}, utils.ErrorWithTrace(err, "DISCOUNT_RATE")
	}
	fee, err := decimal.NewFromString(cfg.DeliveryFee)
	if err != nil {
		return controllers.CheckoutRates{}, utils.ErrorWithTrace(err, "DELIVERY_FEE")
	}
	return controllers.CheckoutRates{DiscountRate: discount, DeliveryFee: fee}, nil
}
