package main

import (
	"log"

	"github.com/parkwatch/parkwatch/cmd/app"
	"github.com/parkwatch/parkwatch/internal/adapters/config"
)

func main() {
	cfg := config.Get()

	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	a.Start()
}
