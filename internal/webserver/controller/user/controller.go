package user

import (
	"time"

	"github.com/quillon/partyfolk/internal/webserver/model"
)

type usersRepository interface {
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Delete(uuid string) error
}

type Config struct {
	MinPasswordLength int
	Secret            []byte
	SessionTimeout    time.Duration
	CookieName        string
}

type Controller struct {
	repository usersRepository
	config     Config
}

// NewController returns a new instance of the users controller
func NewController(repository usersRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
