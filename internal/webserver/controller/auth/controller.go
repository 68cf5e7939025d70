package auth

import (
	"time"

	"github.com/quillon/partyfolk/internal/webserver/model"
)

type authRepository interface {
	FindByUsername(username string) (*model.User, error)
}

type Controller struct {
	repository authRepository
	config     Config
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
	CookieName     string
}

func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
