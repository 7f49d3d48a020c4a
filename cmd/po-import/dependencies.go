package main

import (
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/po-import/internal/domain/pipeline"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
	"github.com/FACorreiaa/po-import/internal/domain/store"
	"github.com/FACorreiaa/po-import/pkg/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Profiles *profile.Store
	Mapping  *store.Mapping
	Pipeline *pipeline.Pipeline
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initProfiles(); err != nil {
		return nil, fmt.Errorf("failed to init vendor profiles: %w", err)
	}

	if err := deps.initStoreMapping(); err != nil {
		return nil, fmt.Errorf("failed to init store mapping: %w", err)
	}

	deps.Pipeline = pipeline.New(deps.Profiles.Current(), deps.Mapping, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initProfiles loads the vendor profile registry: the built-in set by
// default, a JSON file when configured.
func (d *Dependencies) initProfiles() error {
	reg, err := profile.Default()
	if err != nil {
		return err
	}

	if path := d.Config.Paths.ProfileFile; path != "" {
		reg, err = profile.LoadFile(path)
		if err != nil {
			return err
		}
		d.Logger.Info("vendor profiles loaded from file",
			slog.String("path", path),
			slog.Int("profiles", reg.Len()),
		)
	}

	d.Profiles = profile.NewStore(reg)
	return nil
}

// initStoreMapping loads the site-code/name to store-id mapping. A
// missing mapping is allowed; every store then stays unresolved.
func (d *Dependencies) initStoreMapping() error {
	path := d.Config.Paths.StoreMapFile
	if path == "" {
		d.Logger.Warn("no store mapping configured, stores will stay unresolved")
		return nil
	}

	mapping, err := store.LoadFile(path)
	if err != nil {
		return err
	}

	d.Mapping = mapping
	d.Logger.Info("store mapping loaded",
		slog.String("path", path),
		slog.Int("entries", mapping.Len()),
	)
	return nil
}
