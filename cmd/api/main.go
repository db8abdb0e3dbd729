// Package main is the entry point for the RbxServers query API.
// It initializes all systems and starts the HTTP server.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/RbxServers/rbxservers-api/pkg/config"
	"github.com/RbxServers/rbxservers-api/pkg/logger"
	"github.com/RbxServers/rbxservers-api/pkg/store"
	"github.com/RbxServers/rbxservers-api/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.ErrorWebhook)

	logger.System("Iniciando RbxServers API...", "Main")
	logger.Info(fmt.Sprintf("Directorio de datos: %s", cfg.DataDir), "Main")

	// Build the document store and the web server
	st := store.New(cfg.DataDir)
	server := web.NewServer(st)

	server.StartAsync(cfg.Port)
	logger.Info(fmt.Sprintf("📋 Documentación en: http://0.0.0.0:%s/", cfg.Port), "Main")

	// Wait for termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.System("Apagando RbxServers API...", "Main")
}
