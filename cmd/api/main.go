package main

import (
	"context"
	"log"

	"github.com/Angelo270204/prototipado-backend/config"
	"github.com/Angelo270204/prototipado-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	engine := bootstrap.BuildEngine(ctx, store)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "prototipado-backend",
		Version:     cfg.App.Version,
		Store:       store,
		Engine:      engine,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
