package webserver

import (
	"github.com/quillon/partyfolk/internal/webserver/controller/auth"
	"github.com/quillon/partyfolk/internal/webserver/controller/campaign"
	"github.com/quillon/partyfolk/internal/webserver/controller/character"
	"github.com/quillon/partyfolk/internal/webserver/controller/gamesession"
	"github.com/quillon/partyfolk/internal/webserver/controller/home"
	"github.com/quillon/partyfolk/internal/webserver/controller/journal"
	"github.com/quillon/partyfolk/internal/webserver/controller/link"
	"github.com/quillon/partyfolk/internal/webserver/controller/user"
	"github.com/quillon/partyfolk/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth       *auth.Controller
	Users      *user.Controller
	Home       *home.Controller
	Campaigns  *campaign.Controller
	Sessions   *gamesession.Controller
	Links      *link.Controller
	Characters *character.Controller
	Journal    *journal.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	campaignsRepository := &model.CampaignRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	feedRepository := &model.FeedRepository{DB: db}
	linksRepository := &model.HelpfulLinkRepository{DB: db}
	sessionsRepository := &model.GameSessionRepository{DB: db}
	chatRepository := &model.ChatMessageRepository{DB: db}
	charactersRepository := &model.CharacterRepository{DB: db}
	journalRepository := &model.JournalRepository{DB: db}
	systemsRepository := &model.TabletopSystemRepository{DB: db}

	authCfg := auth.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
		CookieName:     SessionCookieName,
	}

	usersCfg := user.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		Secret:            cfg.JwtSecret,
		SessionTimeout:    cfg.SessionTimeout,
		CookieName:        SessionCookieName,
	}

	campaignsCfg := campaign.Config{
		FQDN: cfg.FQDN,
	}

	return Controllers{
		Auth:  auth.NewController(usersRepository, authCfg),
		Users: user.NewController(usersRepository, usersCfg),
		Home:  home.NewController(),
		Campaigns: campaign.NewController(
			campaignsRepository,
			invitationsRepository,
			feedRepository,
			linksRepository,
			sessionsRepository,
			charactersRepository,
			systemsRepository,
			usersRepository,
			sender,
			campaignsCfg,
		),
		Sessions:   gamesession.NewController(sessionsRepository, campaignsRepository, chatRepository),
		Links:      link.NewController(linksRepository, campaignsRepository),
		Characters: character.NewController(charactersRepository, campaignsRepository),
		Journal:    journal.NewController(journalRepository, charactersRepository, sessionsRepository),
	}
}
