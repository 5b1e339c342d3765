package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	DBDSN           string `envconfig:"DB_DSN" default:"blossom.db"`
	MediaDir        string `envconfig:"MEDIA_DIR" default:"./web/media"`
	LogFile         string `envconfig:"LOG_FILE" default:""`
	AdminSecretHash string `envconfig:"ADMIN_SECRET_HASH" default:""`

	// blossomctl settings
	StoreURL  string `envconfig:"STORE_URL" default:"http://localhost:8080/api/products"`
	TokenFile string `envconfig:"TOKEN_FILE" default:".blossom-token"`
}

func Load() Config {
	// Optional .env in the working directory; real env vars win.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir)
	return cfg
}
