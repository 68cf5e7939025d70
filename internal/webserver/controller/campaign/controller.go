package campaign

import (
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Number of feed items shown on the campaign detail page.
const feedPageSize = 15

type campaignsRepository interface {
	Create(campaign *model.Campaign) error
	Update(campaign *model.Campaign) error
	FindBySlug(slug string) (*model.Campaign, error)
	JoinedBy(userID uint) ([]model.Campaign, error)
	ManagedBy(userID uint) ([]model.Campaign, error)
	Players(campaignID uint) ([]model.User, error)
	IsPlayer(campaignID, userID uint) (bool, error)
	PlayerCount(campaignID uint) (int64, error)
	AddPlayer(campaign *model.Campaign, user *model.User) error
	RemovePlayer(campaign *model.Campaign, user *model.User) error
}

type invitationsRepository interface {
	IssueActive(campaignID uint) (*model.CampaignInvitation, error)
	FindActiveByToken(token string) (*model.CampaignInvitation, error)
	ActiveByCampaign(campaignID uint) (*model.CampaignInvitation, error)
	Deactivate(campaignID uint) error
}

type feedRepository interface {
	Create(item *model.PartyFeedItem) error
	Latest(campaignID uint, limit int) ([]model.PartyFeedItem, error)
}

type linksRepository interface {
	ByCampaign(campaignID uint) ([]model.HelpfulLink, error)
}

type sessionsRepository interface {
	ByCampaign(campaignID uint) ([]model.GameSession, error)
}

type charactersRepository interface {
	ByCampaign(campaignID uint) (map[uint]model.PlayerCharacter, error)
}

type systemsRepository interface {
	List() ([]model.TabletopSystem, error)
	FindByUuid(uuid string) (*model.TabletopSystem, error)
}

type usersRepository interface {
	FindByID(id uint) (*model.User, error)
}

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type Config struct {
	FQDN string
}

type Controller struct {
	campaigns   campaignsRepository
	invitations invitationsRepository
	feed        feedRepository
	links       linksRepository
	sessions    sessionsRepository
	characters  charactersRepository
	systems     systemsRepository
	users       usersRepository
	sender      Sender
	config      Config
}

func NewController(
	campaigns campaignsRepository,
	invitations invitationsRepository,
	feed feedRepository,
	links linksRepository,
	sessions sessionsRepository,
	characters charactersRepository,
	systems systemsRepository,
	users usersRepository,
	sender Sender,
	cfg Config,
) *Controller {
	return &Controller{
		campaigns:   campaigns,
		invitations: invitations,
		feed:        feed,
		links:       links,
		sessions:    sessions,
		characters:  characters,
		systems:     systems,
		users:       users,
		sender:      sender,
		config:      cfg,
	}
}
