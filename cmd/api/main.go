package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/clutch42/envelope-budget/internal/config"
	"github.com/clutch42/envelope-budget/internal/database"
	"github.com/clutch42/envelope-budget/internal/envelope"
	envStore "github.com/clutch42/envelope-budget/internal/envelope/store"
	budgetHttp "github.com/clutch42/envelope-budget/internal/http"
	envelopeHandler "github.com/clutch42/envelope-budget/internal/http/envelope"
	importHandler "github.com/clutch42/envelope-budget/internal/http/importcsv"
	txHandler "github.com/clutch42/envelope-budget/internal/http/transaction"
	"github.com/clutch42/envelope-budget/internal/importer"
	"github.com/clutch42/envelope-budget/internal/transaction"
	txStore "github.com/clutch42/envelope-budget/internal/transaction/store"
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

	var (
		envelopeService = envelope.NewService(envStore.New(db))
		txService       = transaction.NewService(txStore.New(db))
		importService   = importer.NewService()
	)

	var (
		envelopeH = envelopeHandler.NewHandler(envelopeService)
		txH       = txHandler.NewHandler(txService)
		importH   = importHandler.NewHandler(importService, txService)
	)

	router := budgetHttp.New(envelopeH, txH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
