package main

import (
	"context"
	"employee-directory"
	"employee-directory/internal/handler"
	"employee-directory/internal/repository"
	"employee-directory/internal/service"
	"employee-directory/pkg/config"
	"employee-directory/pkg/logger"
	"employee-directory/pkg/postgres"
	"errors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const reconnectInterval = 10 * time.Second

func main() {
	config.GlobalConfig.Init()
	cfg := config.GlobalConfig
	logger.Setup(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.New(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("can't connect to postgres: %s", err.Error())
	}
	if err := postgres.MigrateDB(db.DB(), cfg.DB); err != nil {
		log.Fatalf("can't migrate postgres: %s", err.Error())
	}

	var monitor sync.WaitGroup
	monitor.Add(1)
	go func() {
		defer monitor.Done()
		db.MonitorAndReconnect(ctx, reconnectInterval)
	}()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(services, cfg.ServerConfig.Pprof)

	gin.SetMode(cfg.ServerConfig.GinMode)
	srv := new(directory.Server)
	go func() {
		if err := srv.Run(cfg.ServerConfig.Host, cfg.ServerConfig.Port, handlers.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error occurred while running http server, %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Employee directory shutting down")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("error occurred on server shutting down: %s", err.Error())
	}

	// a reconnect in flight must not install a pool after Close
	monitor.Wait()
	if err := db.Close(); err != nil {
		log.Errorf("error occurred on db connection close: %s", err.Error())
	}
}
