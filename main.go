package main

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/quillon/partyfolk/internal/webserver"
	"github.com/quillon/partyfolk/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Error parsing configuration from environment variables: %s", err)
	}

	db := infrastructure.Connect(cfg.DbPath)

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	webserverConfig := webserver.Config{
		Version:           version,
		FQDN:              cfg.FQDN,
		Port:              cfg.Port,
		JwtSecret:         []byte(cfg.JwtSecret),
		SessionTimeout:    cfg.SessionTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("Partyfolk version %s started listening on port %d\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
