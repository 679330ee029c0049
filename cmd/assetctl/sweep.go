package main

import (
	"context"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/imaging"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/internal/util"

	"go.uber.org/fx"
)

func runSweep(ctx context.Context, category string) error {
	var mediaUC usecase.MediaUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			imaging.NewCodec,
			impl.NewMediaService,
		),
		persistence.Module,
		storage.Module,
		fx.Populate(&mediaUC),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	started := time.Now()
	result, err := mediaUC.SweepOrphans(ctx, entity.AssetCategory(category))
	if err != nil {
		return err
	}

	fmt.Printf("Bucket %s (%s): scanned %d objects, deleted %d in %s\n",
		result.Bucket, result.Category, result.Scanned, len(result.Deleted), util.FormatDuration(time.Since(started)))
	for _, name := range result.Deleted {
		fmt.Printf("  - %s\n", name)
	}

	return nil
}
