package main

import "time"

type Config struct {
	// DbPath holds the location of the sqlite database file.
	DbPath string `env:"DBPATH" env-default:"partyfolk.db"`
	// Port defines the port number in which the webserver listens for requests.
	Port int `env:"PORT" env-default:"3000"`
	// FQDN is the public address of this host, used to compose invite links.
	FQDN string `env:"FQDN" env-default:"http://localhost:3000"`
	// JwtSecret stores the string to use to sign JWTs.
	JwtSecret string `env:"JWT_SECRET" env-required:"true"`
	// SessionTimeout specifies how long a session lasts.
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	// MinPasswordLength is the minimum length acceptable for passwords.
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	// SmtpServer points to the address of the send mail server.
	SmtpServer string `env:"SMTP_SERVER"`
	// SmtpPort defines the port in which the mail server listens for requests.
	SmtpPort int `env:"SMTP_PORT" env-default:"587"`
	// SmtpUser holds the user to authenticate against the SMTP server.
	SmtpUser string `env:"SMTP_USER"`
	// SmtpPassword holds the password to authenticate against the SMTP server.
	SmtpPassword string `env:"SMTP_PASSWORD"`
}
