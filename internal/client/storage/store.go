// Package storage is the durable half of the client session: the bearer
// token and the user record, kept in the local SQLite metadata table.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/rentpred/internal/common"
	"github.com/dmitrijs2005/rentpred/internal/dbx"
)

// ErrCorruptedState is returned by Read when the stored pair cannot be used:
// the user payload does not decode, or only one of the two keys is present.
var ErrCorruptedState = errors.New("corrupted session state")

// Credentials is the persisted token/user pair.
type Credentials struct {
	Token string
	User  models.User
}

// Store is the Persisted Session Store contract.
//
//   - Write stores token and user together.
//   - Read returns (nil, nil) when nothing is stored and ErrCorruptedState
//     when the stored data is unusable; callers treat the latter as absent
//     and Clear it.
//   - Token reads the token alone; it is called for every outgoing request.
//   - Clear removes both entries and is a no-op on an empty store.
type Store interface {
	Write(ctx context.Context, token string, user models.User) error
	Read(ctx context.Context) (*Credentials, error)
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// userEnvelope is the versioned on-disk shape of the user record.
type userEnvelope struct {
	Version int          `json:"version"`
	User    *models.User `json:"user"`
}

// SQLiteStore implements Store on the metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Write(ctx context.Context, token string, user models.User) error {
	payload, err := EncodeUser(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).SetMany(ctx, map[string][]byte{
			common.StorageKeyToken: []byte(token),
			common.StorageKeyUser:  payload,
		})
	})
}

func (s *SQLiteStore) Read(ctx context.Context) (*Credentials, error) {
	values, err := metadata.NewSQLiteRepository(s.db).GetMany(ctx, common.StorageKeyToken, common.StorageKeyUser)
	if err != nil {
		return nil, err
	}
	token, hasToken := values[common.StorageKeyToken]
	payload, hasUser := values[common.StorageKeyUser]

	switch {
	case !hasToken && !hasUser:
		return nil, nil
	case hasToken != hasUser:
		return nil, fmt.Errorf("%w: token present=%t, user present=%t", ErrCorruptedState, hasToken, hasUser)
	}

	user, err := DecodeUser(payload)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: string(token), User: *user}, nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	token, _, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.StorageKeyToken, common.StorageKeyUser)
}

// EncodeUser serialises user inside the current schema envelope.
func EncodeUser(user models.User) ([]byte, error) {
	b, err := json.Marshal(userEnvelope{Version: models.UserSchemaVersion, User: &user})
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	return b, nil
}

// DecodeUser parses a stored user payload. A bare user object without the
// envelope is read as version 1. Unknown versions and records without an
// email are reported as ErrCorruptedState.
func DecodeUser(payload []byte) (*models.User, error) {
	var env userEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedState, err)
	}

	user := env.User
	if env.Version == 0 && user == nil {
		var bare models.User
		if err := json.Unmarshal(payload, &bare); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptedState, err)
		}
		user = &bare
	} else if env.Version != models.UserSchemaVersion {
		return nil, fmt.Errorf("%w: unsupported user schema version %d", ErrCorruptedState, env.Version)
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedState, err)
	}
	return user, nil
}
