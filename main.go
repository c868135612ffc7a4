package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal(fmt.Sprintf("Error loading .env file: %s", err))
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		log.Warn("No session secret set, carousel positions will be lost on restart")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatal(fmt.Sprintf("Error generating session secret: %s", err))
		}
	}

	run(cfg, secret)
}
