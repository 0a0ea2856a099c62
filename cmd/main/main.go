package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/songbridge/songbridge/internal/app/converter"
	"github.com/songbridge/songbridge/internal/app/delivery"
	"github.com/songbridge/songbridge/internal/app/dispatcher"
	"github.com/songbridge/songbridge/internal/app/downloader"
	"github.com/songbridge/songbridge/internal/app/registry"
	"github.com/songbridge/songbridge/internal/app/runner"
	"github.com/songbridge/songbridge/internal/app/usecase"
	"github.com/songbridge/songbridge/internal/config"
	"github.com/songbridge/songbridge/internal/crypto"
	"github.com/songbridge/songbridge/internal/media"
	"github.com/songbridge/songbridge/internal/middleware"
	"github.com/songbridge/songbridge/internal/tagger"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogMode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("workers", cfg.ConcurrencyWorkers),
		zap.Int("max_tasks", cfg.MaxTasks),
	)

	if err := os.MkdirAll(cfg.DownloadFolder, 0o755); err != nil {
		logger.Error("failed to create download folder", zap.Error(err))
		os.Exit(1)
	}

	disp := dispatcher.CreateDispatcher()
	taskRegistry := registry.CreateRegistry(cfg.MaxTasks, disp)
	mediaClient := media.CreateClient(cfg.MediaAPIURL, cfg.MediaARL)
	conv := converter.CreateConverter(taskRegistry, mediaClient, cfg.ConcurrencyWorkers)
	engine := downloader.CreateEngine(taskRegistry, mediaClient, crypto.NewDecrypter(), tagger.NewTagger(), downloader.Config{
		Folder:     cfg.DownloadFolder,
		Workers:    cfg.ConcurrencyWorkers,
		Overwrite:  cfg.DownloadOverride,
		Bitrate:    cfg.BitRate,
		MaxRetries: cfg.MaxDownloadRetries,
	})
	jobRunner := runner.CreateRunner()
	defer jobRunner.Stop()

	controller := usecase.CreateController(taskRegistry, disp, conv, engine, mediaClient, jobRunner)
	controller.Login(context.Background())

	taskDelivery := delivery.CreateTaskDelivery(controller)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/conversions", taskDelivery.SubmitConversion).Methods("POST")
	apiRouter.HandleFunc("/downloads", taskDelivery.SubmitDownload).Methods("POST")
	apiRouter.HandleFunc("/tasks", taskDelivery.GetAllTasks).Methods("GET")
	apiRouter.HandleFunc("/tasks", taskDelivery.ClearTasks).Methods("DELETE")
	apiRouter.HandleFunc("/tasks/{id}", taskDelivery.CancelTask).Methods("DELETE")
	apiRouter.HandleFunc("/search", taskDelivery.Search).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped")
	}
}
