package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	campaignservice "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service"
	campaignmemory "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/adapters/memory"
	campaignpostgres "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/adapters/postgres"
	campaignports "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
	sessionservice "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service"
	voterdirectory "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/adapters/hashing"
	votermemory "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/adapters/memory"
	voterpostgres "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/adapters/postgres"
	"github.com/rlopezl29/proyectofinal/internal/platform/config"
	"github.com/rlopezl29/proyectofinal/internal/platform/db"
)

// stores holds the context modules for one process plus the campaign outbox
// the relay drains.
type stores struct {
	voters    voterdirectory.Module
	sessions  sessionservice.Module
	campaigns campaignservice.Module
	outbox    campaignports.OutboxRepository
	clock     campaignports.Clock
	database  *db.Database
}

func buildStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	secret, err := signingSecret(cfg, logger)
	if err != nil {
		return stores{}, err
	}
	out := stores{
		sessions: sessionservice.NewJWTModule(secret, cfg.TokenTTL, logger),
	}
	hasher := hashing.BcryptHasher{Cost: cfg.BcryptCost}

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		voterStore := votermemory.NewStore(nil)
		out.voters = voterdirectory.NewModule(voterdirectory.Dependencies{
			Voters: voterStore,
			Hasher: hasher,
			Clock:  voterStore,
			Logger: logger,
		})
		out.voters.Store = voterStore

		campaignStore := campaignmemory.NewStore(nil)
		out.campaigns = campaignservice.NewModule(campaignservice.Dependencies{
			Campaigns:    campaignStore,
			Ballots:      campaignStore,
			Results:      campaignStore,
			Outbox:       campaignStore,
			Clock:        campaignStore,
			IDGen:        campaignStore,
			RequireVoter: cfg.RequireVoterToken,
			Logger:       logger,
		})
		out.campaigns.Store = campaignStore
		out.outbox = campaignStore
		out.clock = campaignStore
		return out, nil

	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		database, err := openDatabase(cfg)
		if err != nil {
			return stores{}, err
		}
		voterRepo := voterpostgres.NewRepository(database.DB, logger)
		campaignRepo := campaignpostgres.NewRepository(database.DB, logger)
		if err := voterRepo.Migrate(ctx); err != nil {
			_ = database.Close()
			return stores{}, fmt.Errorf("migrate voter directory: %w", err)
		}
		if err := campaignRepo.Migrate(ctx); err != nil {
			_ = database.Close()
			return stores{}, fmt.Errorf("migrate campaign registry: %w", err)
		}

		out.voters = voterdirectory.NewModule(voterdirectory.Dependencies{
			Voters: voterRepo,
			Hasher: hasher,
			Clock:  voterpostgres.SystemClock{},
			Logger: logger,
		})
		out.campaigns = campaignservice.NewModule(campaignservice.Dependencies{
			Campaigns:    campaignRepo,
			Ballots:      campaignRepo,
			Results:      campaignRepo,
			Outbox:       campaignRepo,
			Clock:        campaignpostgres.SystemClock{},
			IDGen:        campaignpostgres.UUIDGenerator{},
			RequireVoter: cfg.RequireVoterToken,
			Logger:       logger,
		})
		out.outbox = campaignRepo
		out.clock = campaignpostgres.SystemClock{}
		out.database = database
		logger.Info("persistent store ready",
			"event", "bootstrap_store_ready",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"driver", cfg.StoreDriver,
		)
		return out, nil
	}
	return stores{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

func openDatabase(cfg config.Config) (*db.Database, error) {
	if cfg.StoreDriver == config.StoreDriverSQLite {
		return db.OpenSQLite(cfg.SQLitePath)
	}
	return db.Connect(cfg.PostgresDSN)
}

// signingSecret falls back to a random per-process key, so tokens stop
// verifying after a restart.
func signingSecret(cfg config.Config, logger *slog.Logger) (string, error) {
	if secret := strings.TrimSpace(cfg.TokenSigningSecret); secret != "" {
		return secret, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token signing secret: %w", err)
	}
	logger.Warn("TOKEN_SIGNING_SECRET not set, using an ephemeral key",
		"event", "bootstrap_ephemeral_signing_key",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return hex.EncodeToString(buf), nil
}

func (s stores) close() error {
	if s.database != nil {
		return s.database.Close()
	}
	return nil
}
