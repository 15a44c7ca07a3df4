package service

import (
	"github.com/MKhiriev/go-gpu-missions/internal/adapter"
	"github.com/MKhiriev/go-gpu-missions/internal/config"
	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/internal/store"
)

type ClientServices struct {
	Sessions SessionClient
}

func NewClientServices(
	storages *store.ClientStorages,
	api adapter.MissionAPI,
	confirmer Confirmer,
	appCfg config.ClientApp,
	log *logger.Logger,
) *ClientServices {
	return &ClientServices{
		Sessions: NewSessionClient(api, storages.Credentials, confirmer, appCfg, log),
	}
}
