// Package session holds the single live session: a credential-stripped
// projection of the authenticated account, mirrored to the persistence
// adapter. It is the only component the rest of the application reads to
// decide who is logged in.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/dbx"
	"github.com/glowlab/skinflow/internal/logging"
	"github.com/glowlab/skinflow/internal/models"
	"github.com/glowlab/skinflow/internal/registry"
	"github.com/glowlab/skinflow/internal/storage/kv"
)

// sessionKey is the persistence-adapter key holding the session mirror.
const sessionKey = "session"

// Demo identity used when Bootstrap finds no persisted session, so the
// application is usable without an explicit signup.
const (
	DemoEmail  = "user@demo.com"
	DemoName   = "Demo User"
	demoSecret = "demo"
)

// Store owns the live session and its persisted mirror.
type Store struct {
	mu       sync.Mutex
	db       *sql.DB
	registry *registry.Registry
	log      logging.Logger

	demoEmail string
	demoName  string

	current *models.Profile
}

// NewStore wires a session store to the database, the account registry and
// a logger. demoEmail/demoName override the auto-creation identity; empty
// strings select the defaults.
func NewStore(db *sql.DB, reg *registry.Registry, log logging.Logger, demoEmail, demoName string) *Store {
	if demoEmail == "" {
		demoEmail = DemoEmail
	}
	if demoName == "" {
		demoName = DemoName
	}
	return &Store{
		db:        db,
		registry:  reg,
		log:       log,
		demoEmail: demoEmail,
		demoName:  demoName,
	}
}

// Current returns a copy of the live session profile, or nil when
// unauthenticated.
func (s *Store) Current() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Bootstrap loads the persisted session mirror if one exists. Otherwise it
// auto-creates the demo account through the registry, derives its session
// and persists both. If the demo account already exists (mirror removed by
// a logout, then a restart) the session is re-derived from the existing
// record instead of failing on the duplicate email.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store := kv.NewSQLiteStore(s.db)

	raw, err := store.Get(ctx, sessionKey)
	if err != nil {
		return err
	}

	if raw != nil {
		var p models.Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("failed to decode session mirror: %w", err)
		}
		s.current = &p
		s.log.Info(ctx, "session restored", "email", p.Email)
		return nil
	}

	account, err := s.registry.Create(ctx, s.demoEmail, demoSecret, s.demoName)
	if errors.Is(err, common.ErrDuplicateEmail) {
		account, err = s.registry.FindByEmail(ctx, s.demoEmail)
	}
	if err != nil {
		return err
	}

	p := account.Profile()
	if err := s.persist(ctx, store, &p); err != nil {
		return err
	}
	s.current = &p
	s.log.Info(ctx, "session auto-created", "email", p.Email)
	return nil
}

// Login verifies credentials through the registry and replaces any prior
// session with the derived one. Fails with common.ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email, passwordSecret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.registry.Verify(ctx, email, passwordSecret)
	if err != nil {
		return err
	}

	p := account.Profile()
	if err := s.persist(ctx, kv.NewSQLiteStore(s.db), &p); err != nil {
		return err
	}
	s.current = &p
	s.log.Info(ctx, "login", "email", p.Email)
	return nil
}

// Signup creates the account through the registry and starts its session
// exactly as Login does. Fails with common.ErrDuplicateEmail.
func (s *Store) Signup(ctx context.Context, email, passwordSecret, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.registry.Create(ctx, email, passwordSecret, name)
	if err != nil {
		return err
	}

	p := account.Profile()
	if err := s.persist(ctx, kv.NewSQLiteStore(s.db), &p); err != nil {
		return err
	}
	s.current = &p
	s.log.Info(ctx, "signup", "email", p.Email)
	return nil
}

// Logout clears the live session and removes the persisted mirror.
// Calling it with no active session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := kv.NewSQLiteStore(s.db).Delete(ctx, sessionKey); err != nil {
		return err
	}
	if s.current != nil {
		s.log.Info(ctx, "logout", "email", s.current.Email)
	}
	s.current = nil
	return nil
}

// UpdateProfile merges the partial update into the live session, persists
// the mirror and propagates the same update into the registry keyed by the
// session's id. Both writes happen in one transaction, so the mirror and
// the registry record agree when this returns. With no active session this
// is a silent no-op.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	updated := *s.current
	update.ApplyToProfile(&updated)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.persist(ctx, kv.NewSQLiteStore(tx), &updated); err != nil {
			return err
		}
		// An unknown id inside is a silent no-op.
		return s.registry.ApplyUpdateTx(ctx, tx, updated.ID, update)
	})
	if err != nil {
		return err
	}

	*s.current = updated
	return nil
}

func (s *Store) persist(ctx context.Context, store kv.Store, p *models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode session mirror: %w", err)
	}
	return store.Set(ctx, sessionKey, raw)
}
