package main

import (
	"log"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/commands"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/config"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/infrastructure"
	mcpserver "github.com/FlankaLanka/CollabCanvas-sub002/internal/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	infra, err := infrastructure.New()
	if err != nil {
		log.Fatal("infrastructure init failed:", err)
	}

	if err := infra.Start(); err != nil {
		log.Fatal("infrastructure start failed:", err)
	}
	infra.Lifecycle.WaitForStartup()

	server := mcpserver.New(mcpserver.Deps{
		Canvas:   infra.Canvas,
		Commands: commands.New(infra.Canvas, cfg.Resolver, infra.Logger),
		Weights:  cfg.Resolver,
		Version:  cfg.Version,
		Logger:   infra.Logger,
	})

	if err := server.ServeStdio(); err != nil {
		log.Fatal("mcp server failed:", err)
	}
}
