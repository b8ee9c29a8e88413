package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"pantrypay/internal/config"
	"pantrypay/internal/database"
	"pantrypay/internal/family"
	familyStore "pantrypay/internal/family/store"
	pantryHttp "pantrypay/internal/http"
	familyHandler "pantrypay/internal/http/family"
	paymentHandler "pantrypay/internal/http/payment"
	"pantrypay/internal/payment"
	paymentStore "pantrypay/internal/payment/store"
	"pantrypay/internal/razorpay"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	hooks := []database.Hook{database.SlogHook{Logger: slog.Default()}}

	gateway := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL)

	var (
		paymentService = payment.NewService(paymentStore.New(db, hooks...), gateway)
		familyService  = family.NewService(familyStore.New(db, hooks...))
	)

	var (
		paymentH = paymentHandler.NewHandler(paymentService)
		familyH  = familyHandler.NewHandler(familyService)
	)

	router := pantryHttp.New(cfg.Auth.JWTSecret, paymentH, familyH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
