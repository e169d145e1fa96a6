package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jitendrapal/pathology-v1/internal/config"
	"github.com/jitendrapal/pathology-v1/internal/database"
	"github.com/jitendrapal/pathology-v1/internal/repository"
	"github.com/jitendrapal/pathology-v1/internal/server"
	"github.com/jitendrapal/pathology-v1/internal/service"
	"github.com/jitendrapal/pathology-v1/internal/watcher"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Println("Database connected successfully")

	// Run migrations
	log.Println("Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		return err
	}
	log.Println("Migrations completed successfully")

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	testRepo := repository.NewLabTestRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	hospitalRepo := repository.NewHospitalRepository(db)
	collectorRepo := repository.NewCollectorRepository(db)

	// Initialize services
	registrationSvc := service.NewRegistrationService(patientRepo, draftRepo)
	catalogSvc := service.NewCatalogService(testRepo)
	billingSvc := service.NewBillingService(db, billRepo, paymentRepo, orderRepo, cfg.AllowOverpayment)
	orderSvc := service.NewOrderService(db, patientRepo, testRepo, orderRepo, billingSvc)
	reportSvc := service.NewReportService(patientRepo, orderRepo, billRepo, paymentRepo)
	directorySvc := service.NewDirectoryService(hospitalRepo, collectorRepo)

	// Initialize HTTP server
	srv := server.New(registrationSvc, catalogSvc, orderSvc, billingSvc, reportSvc, directorySvc)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Router(),
	}

	// Initialize overdue-bill watcher
	w := watcher.New(cfg, billRepo)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start watcher and HTTP server
	errChan := make(chan error, 2)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
			return
		}
		errChan <- nil
	}()
	go func() {
		log.Printf("HTTP server listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Println("Shutdown signal received")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Application stopped")
	return nil
}
