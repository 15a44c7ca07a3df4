// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gpu-missions/internal/adapter"
	"github.com/MKhiriev/go-gpu-missions/internal/config"
	"github.com/MKhiriev/go-gpu-missions/internal/crypto"
	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/internal/store"
)

// runtime is the opened client stack of a single command.
type runtime struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
}

// openRuntime wires config → logger → sealer → storage → adapter → services.
// flags carry the highest-priority configuration values.
func openRuntime(ctx context.Context, flags *config.StructuredConfig, confirmer service.Confirmer) (*runtime, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("gpu-missions", cfg.App.LogPath)
	logger.SetLevel(cfg.App.LogLevel)

	sealer := crypto.NewTokenSealer(cfg.App.StoragePassphrase)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPMissionAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create mission adapter")
		storages.Close()
		return nil, fmt.Errorf("create mission adapter: %w", err)
	}

	services := service.NewClientServices(storages, api, confirmer, cfg.App, log)

	log.Debug().
		Str("address", cfg.Adapter.HTTPAddress).
		Str("db", cfg.Storage.DB.DSN).
		Bool("sealed", cfg.App.StoragePassphrase != "").
		Msg("client runtime opened")

	return &runtime{
		cfg:      cfg,
		log:      log,
		storages: storages,
		services: services,
	}, nil
}

func (r *runtime) Sessions() service.SessionClient {
	return r.services.Sessions
}

func (r *runtime) Close() error {
	return r.storages.Close()
}
