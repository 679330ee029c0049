package main

import (
	"fmt"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

func runMigrate() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.DataStore.Provider != config.DataStoreProviderPostgres {
		return errors.Errorf("migrate only supports the postgres data store, got %s", cfg.DataStore.Provider)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	models := model.AllModels()
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate tables")
	}

	fmt.Printf("Migrated %d tables\n", len(models))

	return nil
}
