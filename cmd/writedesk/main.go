package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfgPath := flag.String("config", "config/config.yaml", "path to yaml config")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err = app.Run(cfg); err != nil {
		log.Fatalf("app stopped: %v", err)
	}
}
