package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gpu-missions/internal/crypto"
	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/models"
)

type credentialRepository struct {
	*DB
	sealer crypto.TokenSealer
	now    func() time.Time
	logger *logger.Logger
}

// NewCredentialRepository returns a [CredentialRepository] that passes every
// token through sealer on its way to and from the database.
func NewCredentialRepository(db *DB, sealer crypto.TokenSealer, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		sealer: sealer,
		now:    time.Now,
		logger: logger,
	}
}

func (c *credentialRepository) Save(ctx context.Context, cred models.Credential) error {
	log := logger.FromContext(ctx)

	sealed, err := c.sealer.Seal(cred.Token)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Save").Msg("failed to seal token")
		return fmt.Errorf("failed to seal token: %w", err)
	}

	query, args, err := buildSaveCredentialQuery(defaultCredentialSlot, sealed, c.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "credentialRepository.Save").Msg("failed to execute upsert for credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *credentialRepository) Get(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialQuery(defaultCredentialSlot)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Get").Msg("failed to query credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	token, err := c.sealer.Open(stored)
	if err != nil {
		log.Warn().Err(err).Str("func", "credentialRepository.Get").Msg("stored token cannot be opened")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialUnreadable, err)
	}

	cred := models.NewCredential(token)
	if cred.Empty() {
		return models.Credential{}, ErrCredentialNotFound
	}

	return cred, nil
}

func (c *credentialRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(defaultCredentialSlot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "credentialRepository.Delete").Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
