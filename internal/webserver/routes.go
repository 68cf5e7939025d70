package webserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/quillon/partyfolk/internal/webserver/flash"
)

func routes(app *fiber.App, controllers Controllers, cfg Config) {
	requireAuth := AlwaysRequireAuthentication(cfg.JwtSecret)
	forbidAuth := AllowIfNotLoggedIn(cfg.JwtSecret)

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Use(flash.Read)

	app.Get("/login", forbidAuth, controllers.Auth.Login)
	app.Post("/login", forbidAuth, controllers.Auth.SignIn)
	app.Get("/signup", forbidAuth, controllers.Users.New)
	app.Post("/signup", forbidAuth, controllers.Users.Create)

	app.Get("/logout", requireAuth, controllers.Auth.SignOut)
	app.Post("/account/delete", requireAuth, controllers.Users.Delete)

	app.Get("/join/:token", requireAuth, controllers.Campaigns.Join)

	// Static segments must be registered before the :slug wildcard so that
	// e. g. /campaigns/new is not parsed as a campaign named "new".
	app.Get("/campaigns", requireAuth, controllers.Campaigns.List)
	app.Get("/campaigns/managed", requireAuth, controllers.Campaigns.Managed)
	app.Get("/campaigns/new", requireAuth, controllers.Campaigns.New)
	app.Post("/campaigns", requireAuth, controllers.Campaigns.Create)

	campaignsGroup := app.Group("/campaigns/:slug", requireAuth)

	campaignsGroup.Get("/", controllers.Campaigns.Detail)
	campaignsGroup.Get("/edit", controllers.Campaigns.Edit)
	campaignsGroup.Post("/edit", controllers.Campaigns.Update)
	campaignsGroup.Post("/announce", controllers.Campaigns.Announce)
	campaignsGroup.Post("/invitations", controllers.Campaigns.Invite)
	campaignsGroup.Post("/invitations/deactivate", controllers.Campaigns.DeactivateInvitation)
	campaignsGroup.Post("/leave", controllers.Campaigns.Leave)

	campaignsGroup.Post("/links", controllers.Links.Create)

	campaignsGroup.Get("/sessions/new", controllers.Sessions.New)
	campaignsGroup.Post("/sessions", controllers.Sessions.Create)
	campaignsGroup.Get("/sessions/:number<int>", controllers.Sessions.Detail)
	campaignsGroup.Get("/sessions/:number<int>/edit", controllers.Sessions.Edit)
	campaignsGroup.Post("/sessions/:number<int>/edit", controllers.Sessions.Update)
	campaignsGroup.Post("/sessions/:number<int>/rsvp", controllers.Sessions.RSVP)
	campaignsGroup.Post("/sessions/:number<int>/chat", controllers.Sessions.PostMessage)

	app.Post("/links/:id<int>/delete", requireAuth, controllers.Links.Delete)

	charactersGroup := app.Group("/characters", requireAuth)

	charactersGroup.Get("/", controllers.Characters.List)
	charactersGroup.Get("/new", controllers.Characters.New)
	charactersGroup.Post("/", controllers.Characters.Create)
	charactersGroup.Get("/:uuid<guid>", controllers.Characters.Detail)
	charactersGroup.Get("/:uuid<guid>/edit", controllers.Characters.Edit)
	charactersGroup.Post("/:uuid<guid>/edit", controllers.Characters.Update)

	charactersGroup.Get("/:uuid<guid>/journal", controllers.Journal.List)
	charactersGroup.Get("/:uuid<guid>/journal/new", controllers.Journal.New)
	charactersGroup.Post("/:uuid<guid>/journal", controllers.Journal.Create)

	journalGroup := app.Group("/journal", requireAuth)

	journalGroup.Get("/:uuid<guid>/edit", controllers.Journal.Edit)
	journalGroup.Post("/:uuid<guid>/edit", controllers.Journal.Update)
	journalGroup.Post("/:uuid<guid>/delete", controllers.Journal.Delete)

	app.Get("/", OptionalAuthentication(cfg.JwtSecret), controllers.Home.Index)
}
