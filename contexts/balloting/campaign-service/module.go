package campaignservice

import (
	"log/slog"

	httpadapter "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/adapters/http"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/adapters/memory"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application/queries"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns    ports.CampaignRepository
	Ballots      ports.BallotBox
	Results      ports.ResultsRepository
	Outbox       ports.OutboxWriter
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	RequireVoter bool
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Registry: commands.RegistryUseCase{
				Campaigns:   deps.Campaigns,
				Outbox:      deps.Outbox,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGen,
				Logger:      deps.Logger,
			},
			Ballots: commands.CastVoteUseCase{
				Ballots:      deps.Ballots,
				Outbox:       deps.Outbox,
				Clock:        deps.Clock,
				IDGenerator:  deps.IDGen,
				RequireVoter: deps.RequireVoter,
				Logger:       deps.Logger,
			},
			Results: commands.CloseCampaignUseCase{
				Results:     deps.Results,
				Outbox:      deps.Outbox,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGen,
				Logger:      deps.Logger,
			},
			Campaigns: queries.CampaignQueryUseCase{
				Campaigns: deps.Campaigns,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Campaign, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns: store,
		Ballots:   store,
		Results:   store,
		Outbox:    store,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
