package main

import (
	"log"

	"github.com/relabs-tech/grove_controller/internal/app"
	"github.com/relabs-tech/grove_controller/internal/config"
)

func main() {
	log.Println("starting grove-controller control loop (mock hardware)")

	// Load configuration
	if err := config.InitGlobal("grove_config.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunMockController(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
