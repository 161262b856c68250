package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/yussufhh/Novella/internal/config"
	"github.com/yussufhh/Novella/internal/webapp"
)

func main() {
	// A missing .env is fine; the config layer reads the environment either way.
	_ = godotenv.Load()

	cfg, err := config.Load("novella.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	handler, err := webapp.NewHandler(webapp.Options{
		Config:        cfg,
		StaticDir:     "static",
		UseDiskStatic: webapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("novella listening on %s (backend %s)", cfg.Listen, cfg.Backend.BaseURL)
	log.Fatal(http.ListenAndServe(cfg.Listen, handler))
}
