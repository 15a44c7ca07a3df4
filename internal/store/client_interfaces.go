package store

import (
	"context"

	"github.com/MKhiriev/go-gpu-missions/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository persists the single access token of the client.
type CredentialRepository interface {
	// Save stores cred, replacing any previously stored one.
	Save(ctx context.Context, cred models.Credential) error
	// Get returns the stored credential or [ErrCredentialNotFound].
	Get(ctx context.Context) (models.Credential, error)
	// Delete removes the stored credential. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}
