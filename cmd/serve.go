package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"growth_decay/internal/handlers"
	"growth_decay/internal/logger"
	"growth_decay/internal/server"
	"growth_decay/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe(currentSettings())
			return nil
		},
	}
	cmd.Flags().StringP("port", "p", "", "listen port (overrides config)")
	_ = viper.BindPFlag(keyPort, cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(cfg settings) {
	// init logger
	log := logger.Get(cfg.LogLevel)

	// wire dependencies
	services := service.NewService(cfg.limits())
	apiHandler := handlers.NewHandler(services, log).WithStreamInterval(cfg.StreamInterval)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "max_table_points", cfg.MaxTablePoints)

	// graceful shutdown
	waitForShutdown(srv, cfg.ShutdownTimeout, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests and streams to complete
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
