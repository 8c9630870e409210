package main

import (
	"log"

	"types-editor/internal/app"
	"types-editor/internal/config"
)

func main() {
	cfg := config.Load()
	appLogger := cfg.NewLogger()

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
