// Package registry owns the durable collection of all registered accounts,
// credentials included. The collection serializes as a single JSON array
// under one key in the persistence adapter and round-trips through it on
// every mutating operation.
package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/dbx"
	"github.com/glowlab/skinflow/internal/models"
	"github.com/glowlab/skinflow/internal/storage/kv"
)

// accountsKey is the persistence-adapter key holding the full collection.
const accountsKey = "accounts"

// Registry enforces email uniqueness and performs partial updates by id.
//
// The mutex makes the FindByEmail+Create and FindByEmail+Verify pairs
// atomic check-then-act sections, so a future multi-writer host cannot
// race a duplicate email past the uniqueness check.
type Registry struct {
	mu sync.Mutex
	db *sql.DB
}

func New(db *sql.DB) *Registry {
	return &Registry{db: db}
}

func (r *Registry) load(ctx context.Context, store kv.Store) ([]models.Account, error) {
	raw, err := store.Get(ctx, accountsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode account collection: %w", err)
	}
	return accounts, nil
}

func (r *Registry) save(ctx context.Context, store kv.Store, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode account collection: %w", err)
	}
	return store.Set(ctx, accountsKey, raw)
}

func findByEmail(accounts []models.Account, email string) (models.Account, bool) {
	for _, a := range accounts {
		if a.Email == email {
			return a, true
		}
	}
	return models.Account{}, false
}

// FindByEmail returns the account registered under email (exact match) or
// common.ErrNotFound.
func (r *Registry) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx, kv.NewSQLiteStore(r.db))
	if err != nil {
		return models.Account{}, err
	}

	a, ok := findByEmail(accounts, email)
	if !ok {
		return models.Account{}, common.ErrNotFound
	}
	return a, nil
}

// Create registers a new account. It fails with common.ErrDuplicateEmail if
// the email is already taken, leaving the collection unchanged. On success
// the new account carries a fresh ID and the standard defaults, and the full
// collection is persisted.
func (r *Registry) Create(ctx context.Context, email, passwordSecret, name string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := kv.NewSQLiteStore(r.db)

	accounts, err := r.load(ctx, store)
	if err != nil {
		return models.Account{}, err
	}

	if _, ok := findByEmail(accounts, email); ok {
		return models.Account{}, common.ErrDuplicateEmail
	}

	account := models.NewAccount(email, passwordSecret, name)
	accounts = append(accounts, account)

	if err := r.save(ctx, store, accounts); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Verify checks credentials. It fails with common.ErrInvalidCredentials
// both when no account holds the email and when the secret does not match
// exactly, so callers cannot distinguish the two cases.
func (r *Registry) Verify(ctx context.Context, email, passwordSecret string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx, kv.NewSQLiteStore(r.db))
	if err != nil {
		return models.Account{}, err
	}

	a, ok := findByEmail(accounts, email)
	if !ok || a.PasswordSecret != passwordSecret {
		return models.Account{}, common.ErrInvalidCredentials
	}
	return a, nil
}

// ApplyUpdate merges the partial update into the account with the given id
// and persists the full collection. An unknown id is a silent no-op: the
// session store calls this best-effort after a session-level update, and a
// missing registry record must never block that update.
func (r *Registry) ApplyUpdate(ctx context.Context, id string, update models.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.applyUpdate(ctx, kv.NewSQLiteStore(r.db), id, update)
}

// ApplyUpdateTx is ApplyUpdate running against a caller-provided handle,
// typically a transaction shared with the session-mirror write.
func (r *Registry) ApplyUpdateTx(ctx context.Context, tx dbx.DBTX, id string, update models.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.applyUpdate(ctx, kv.NewSQLiteStore(tx), id, update)
}

func (r *Registry) applyUpdate(ctx context.Context, store kv.Store, id string, update models.ProfileUpdate) error {
	accounts, err := r.load(ctx, store)
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].ID == id {
			update.ApplyToAccount(&accounts[i])
			return r.save(ctx, store, accounts)
		}
	}
	return nil
}
