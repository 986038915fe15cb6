package main

import (
	"log"
	"os"

	"http_pls/internal/bootstrap"
	"http_pls/internal/config"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.MustLoad(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	app := bootstrap.New(conf)
	if err := app.Run(); err != nil {
		log.Fatalf("Server exited with error: %s", err)
	}
}
