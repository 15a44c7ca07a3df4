// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable = "credentials"

	// defaultCredentialSlot is the only row the client ever writes.
	defaultCredentialSlot = "default"
)

func buildSaveCredentialQuery(slot, token string, createdAt time.Time) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("slot", "token", "created_at").
		Values(slot, token, createdAt).
		Suffix("ON CONFLICT(slot) DO UPDATE SET token = excluded.token, created_at = excluded.created_at").
		ToSql()
}

func buildGetCredentialQuery(slot string) (string, []any, error) {
	return sq.Select("token").
		From(credentialsTable).
		Where(sq.Eq{"slot": slot}).
		Limit(1).
		ToSql()
}

func buildDeleteCredentialQuery(slot string) (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(sq.Eq{"slot": slot}).
		ToSql()
}
