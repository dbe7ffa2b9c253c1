package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gatherchat/internal/wire"
)

func main() {
	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	cfg := app.Config
	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:        app.Router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.GRPCPort))
	if err != nil {
		app.Log.Fatal("failed to listen for gRPC", zap.String("port", cfg.Server.GRPCPort), zap.Error(err))
	}

	go func() {
		app.Log.Info("HTTP server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	go func() {
		app.Log.Info("gRPC server starting", zap.String("addr", lis.Addr().String()))
		if err := app.GRPC.Serve(lis); err != nil {
			app.Log.Fatal("gRPC server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app.GRPC.GracefulStop()
	if err := server.Shutdown(ctx); err != nil {
		app.Log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	app.Log.Info("server stopped")
}
