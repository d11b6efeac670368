package main

import (
	"context"
	"fmt"
	"sync"

	configfile "github.com/custodia-labs/charta/internal/adapters/driven/config/file"
	"github.com/custodia-labs/charta/internal/adapters/driven/serializer/docx"
	"github.com/custodia-labs/charta/internal/adapters/driven/serializer/markdown"
	"github.com/custodia-labs/charta/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/charta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/charta/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/charta/internal/adapters/driving/cli"
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/services"
	"github.com/custodia-labs/charta/internal/logger"
)

// stores are the storage adapters selected by the configured backend.
type stores struct {
	templates driven.TemplateStore
	records   driven.CharterRecordStore
	watch     *file.CatalogStore
	close     func()
}

// bootstrap wires configuration, storage and services for one command.
func bootstrap(ctx context.Context, opts cli.Options) (cli.Services, func(), error) {
	log := logger.For("bootstrap")

	var configStore driven.ConfigStore
	configPath := ""
	if opts.Ephemeral {
		configStore = memory.NewConfigStore()
	} else {
		fs, err := configfile.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return cli.Services{}, nil, fmt.Errorf("loading config: %w", err)
		}
		configStore = fs
		configPath = fs.Path()
	}
	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()
	if opts.Ephemeral {
		settings.StorageBackend = domain.StorageMemory
	}

	st, err := openStores(ctx, settings)
	if err != nil {
		return cli.Services{}, nil, err
	}
	log.Debug("storage backend %s", settings.StorageBackend)

	catalog, err := services.LoadCatalog(ctx, st.templates)
	if err != nil {
		st.close()
		return cli.Services{}, nil, fmt.Errorf("loading templates: %w", err)
	}
	advisor := services.NewRouteAdvisor(catalog)

	charter := services.NewCharterService(catalog, advisor, st.records,
		[]driven.DocumentSerializer{docx.New(), markdown.New(), markdown.NewListing()},
		services.WithMerger(services.NewTermMerger(services.WithStrictFreightRate(settings.StrictFreightRate))),
		services.WithRateEstimator(services.NewLinearRateEstimator(settings.RatePerMile)),
		services.WithDefaultFormat(settings.DefaultFormat),
	)

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if st.watch != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.watch.Watch(watchCtx, file.DefaultDebounce, func() {
				if err := catalog.Reload(watchCtx); err != nil {
					log.Warn("reloading %s: %v", st.watch.Path(), err)
					return
				}
				log.Info("reloaded templates from %s", st.watch.Path())
			})
			if err != nil {
				log.Warn("watching %s: %v", st.watch.Path(), err)
			}
		}()
	}

	done := func() {
		cancel()
		wg.Wait()
		st.close()
	}

	return cli.Services{
		Catalog:    catalog,
		Advisor:    advisor,
		Charter:    charter,
		Settings:   settingsService,
		Templates:  st.templates,
		ConfigPath: configPath,
	}, done, nil
}

// openStores opens the template and record stores for a backend.
func openStores(ctx context.Context, settings domain.Settings) (*stores, error) {
	switch settings.StorageBackend {
	case domain.StorageSQLite:
		db, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		if _, err := db.SeedTemplates(ctx, domain.BuiltinTemplates()); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding templates: %w", err)
		}
		return &stores{
			templates: db.TemplateStore(),
			records:   db.RecordStore(),
			close:     func() { _ = db.Close() },
		}, nil

	case domain.StorageMemory:
		return &stores{
			templates: memory.NewBuiltinTemplateStore(),
			records:   memory.NewRecordStore(),
			close:     func() {},
		}, nil

	default:
		records, err := file.NewRecordLogInDir(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening record log: %w", err)
		}
		var catalogFile *file.CatalogStore
		if settings.CatalogFile != "" {
			catalogFile = file.NewCatalogStore(settings.CatalogFile)
		} else {
			catalogFile, err = file.NewCatalogStoreInDir(settings.DataDir)
			if err != nil {
				return nil, fmt.Errorf("opening template catalog: %w", err)
			}
			if _, err := catalogFile.Seed(ctx, domain.BuiltinTemplates()); err != nil {
				return nil, fmt.Errorf("seeding templates: %w", err)
			}
		}
		return &stores{
			templates: catalogFile,
			records:   records,
			watch:     catalogFile,
			close:     func() {},
		}, nil
	}
}
