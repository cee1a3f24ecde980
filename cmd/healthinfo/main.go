package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/app"
	"github.com/aussiebroadwan/healthinfo/pkg/cryptox"
)

func main() {
	// `healthinfo keygen` prints a new key for API_KEYS and exits
	if len(os.Args) > 1 && os.Args[1] == "keygen" {
		key, err := cryptox.GenerateAPIKey()
		if err != nil {
			log.Fatalf("failed to generate api key: %v", err)
		}
		fmt.Println(key)
		return
	}

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
