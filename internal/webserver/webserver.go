package webserver

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/infrastructure"
	"github.com/quillon/partyfolk/internal/webserver/jwtclaimsreader"
)

//go:embed views
var viewsFS embed.FS

//go:embed css
var cssFS embed.FS

type Config struct {
	Version           string
	FQDN              string
	Port              int
	JwtSecret         []byte
	SessionTimeout    time.Duration
	MinPasswordLength int
}

// Sender sends emails. Implementations are in the infrastructure package.
type Sender interface {
	From() string
	Send(address, subject, body string) error
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatal(err)
	}

	engine, err := infrastructure.TemplateEngine(views)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	routes(app, controllers, cfg)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	err = c.Status(code).Render(
		fmt.Sprintf("errors/%d", code),
		fiber.Map{
			"Title":   "Partyfolk",
			"Session": jwtclaimsreader.SessionData(c),
		},
		"layout")

	if err != nil {
		log.Println(err)
		// In case the Render fails
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return nil
}
