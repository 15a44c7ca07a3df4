package store

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gpu-missions/internal/mock"
	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCredentialRepository_Save_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sealer := mock.NewMockTokenSealer(ctrl)
	db, dbMock := newTestDB(t)
	repo := newTestRepo(t, db, sealer)

	sealErr := errors.New("entropy exhausted")
	sealer.EXPECT().Seal("abc").Return("", sealErr)

	err := repo.Save(testContext(), models.NewCredential("abc"))

	assert.ErrorIs(t, err, sealErr)
	// до БД дело не доходит
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCredentialRepository_Get_OpensStoredValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	sealer := mock.NewMockTokenSealer(ctrl)
	db, dbMock := newTestDB(t)
	repo := newTestRepo(t, db, sealer)

	dbMock.ExpectQuery(`SELECT token FROM credentials`).
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("stored-value"))
	sealer.EXPECT().Open("stored-value").Return(" abc ", nil)

	cred, err := repo.Get(testContext())

	require.NoError(t, err)
	assert.Equal(t, "abc", cred.Token)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
