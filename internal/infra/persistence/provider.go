// Package persistence selects the data store backend for slots, galleries and loyalty accounts.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/rest"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the repositories, injected by Fx
type RepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes every repository of the selected backend
type Repositories struct {
	fx.Out

	Slots     repository.AssetSlotRepository
	Galleries repository.GalleryRepository
	Accounts  repository.LoyaltyAccountRepository
}

// NewRepositories builds the repositories for dataStore.provider
func NewRepositories(params RepositoryParams) (Repositories, error) {
	cfg := params.Config.DataStore
	provider := config.DataStoreProviderPostgres
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case config.DataStoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL data store")

		return Repositories{
			Slots:     postgres.NewAssetSlotRepository(db),
			Galleries: postgres.NewGalleryRepository(db),
			Accounts:  postgres.NewLoyaltyAccountRepository(db),
		}, nil

	case config.DataStoreProviderREST:
		client, err := rest.NewClient(cfg, params.Logger)
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using REST data store", slog.String("url", cfg.URL))

		return Repositories{
			Slots:     rest.NewAssetSlotRepository(client),
			Galleries: rest.NewGalleryRepository(client),
			Accounts:  rest.NewLoyaltyAccountRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown data store provider: %s", provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
