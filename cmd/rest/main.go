package main

import (
	"context"
	"log"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/bootstrap"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/config"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/server"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/tracer"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/database"
)

func main() {
	// 1. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Dependency container
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Background services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()
	if container.ActivityService != nil {
		go container.ActivityService.Start()
	}

	// 6. HTTP server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
