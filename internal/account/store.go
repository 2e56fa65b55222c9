package account

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpovs/accountvault/internal/common"
	"github.com/mkarpovs/accountvault/internal/cryptox"
	"github.com/mkarpovs/accountvault/internal/dbx"
	"github.com/mkarpovs/accountvault/internal/logging"
	"github.com/mkarpovs/accountvault/internal/snapshot"
	"github.com/mkarpovs/accountvault/internal/vault"
)

// Fixed per-account resource names under the account's sub-directory.
const (
	recordFileName = "account.json"
	avatarFileName = "avatar.png"
)

const saltSize = 16

// loginFailedMsg is shared by the not-found and bad-password outcomes so the
// message does not leak which accounts exist. The Result.Err kind stays
// distinct.
const loginFailedMsg = "login failed: check your email and password"

// State enumerates the store lifecycle.
type State string

const (
	StateUninitialized  State = "uninitialized"
	StateDirectoryUnset State = "directory_unset"
	StateReady          State = "ready"
	StateLoggedIn       State = "logged_in"
)

// Store owns the account records under a granted storage root and the
// single active session. Exactly one operation may be in flight at a time;
// the calling UI layer enforces this (e.g. by disabling its submit control
// while an operation is pending).
type Store struct {
	provider vault.Provider
	db       *sql.DB
	log      logging.Logger

	dirOpts vault.Options
	salted  bool
	now     func() time.Time
	newID   func() string

	state   State
	root    vault.Dir
	current *Account
}

// Option customizes a Store.
type Option func(*Store)

// WithSaltedHashes makes CreateAccount write Argon2id-salted records instead
// of the legacy unsalted SHA-256 scheme. Login accepts both schemes
// regardless of this setting. The legacy default keeps records compatible
// with stores that predate salting, at the cost of identical passwords
// hashing identically across accounts.
func WithSaltedHashes() Option {
	return func(s *Store) { s.salted = true }
}

// WithDirectoryOptions overrides the grant request passed to the provider.
func WithDirectoryOptions(opts vault.Options) Option {
	return func(s *Store) { s.dirOpts = opts }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds a Store over the given directory provider and snapshot
// database. The store starts in StateUninitialized; call Initialize first.
func NewStore(provider vault.Provider, db *sql.DB, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		db:       db,
		log:      log.With("component", "account"),
		dirOpts:  vault.Options{Mode: vault.ModeReadWrite},
		now:      time.Now,
		newID:    uuid.NewString,
		state:    StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) snapshots() snapshot.Repository {
	return snapshot.NewSQLiteRepository(s.db)
}

// State returns the current lifecycle state.
func (s *Store) State() State { return s.state }

// CurrentUser returns the logged-in account, or nil.
func (s *Store) CurrentUser() *Account { return s.current }

// LoggedIn reports whether a session is active.
func (s *Store) LoggedIn() bool { return s.current != nil }

// Initialize attempts to recover a previously granted storage root. Absence
// of a prior grant, a provider without grant recovery, or a stale ref are
// all normal outcomes, not failures: the store simply lands in
// StateDirectoryUnset. Initialize never returns an error.
func (s *Store) Initialize(ctx context.Context) State {
	s.state = StateDirectoryUnset

	restorer, ok := s.provider.(vault.GrantRestorer)
	if !ok {
		s.log.Debug(ctx, "provider does not support grant recovery")
		return s.state
	}

	ref, err := s.snapshots().Get(ctx, snapshot.KeyDirectoryRef)
	if err != nil {
		s.log.Warn(ctx, "reading stored directory ref failed", "error", err)
		return s.state
	}
	if len(ref) == 0 {
		return s.state
	}

	dir, err := restorer.RestoreGrant(ctx, string(ref))
	if err != nil {
		s.log.Info(ctx, "stored directory grant no longer valid", "ref", string(ref))
		return s.state
	}

	s.root = dir
	s.state = StateReady
	s.log.Info(ctx, "storage root recovered", "ref", dir.Ref())
	return s.state
}

// RequestDirectoryAccess asks the provider for a storage root grant.
// On success the ref is persisted for future recovery attempts and the
// store becomes Ready; on denial the state is unchanged and false is
// returned. No account data is lost either way.
func (s *Store) RequestDirectoryAccess(ctx context.Context) bool {
	dir, err := s.provider.RequestDirectory(ctx, s.dirOpts)
	if err != nil {
		s.log.Warn(ctx, "directory access not granted", "error", err)
		return false
	}

	s.root = dir
	if s.state != StateLoggedIn {
		s.state = StateReady
	}

	// Persisting the ref only matters for the next process start; the
	// grant itself is already usable.
	if err := s.snapshots().Set(ctx, snapshot.KeyDirectoryRef, []byte(dir.Ref())); err != nil {
		s.log.Warn(ctx, "persisting directory ref failed", "error", err)
	}

	s.log.Info(ctx, "storage root granted", "ref", dir.Ref())
	return true
}

// CreateAccount registers a new account under the storage root. If no root
// is held yet, a directory grant is requested first. The plaintext password
// is hashed before anything touches disk and is never persisted or logged.
// A record already present under the derived key is never overwritten.
// Avatar storage is best-effort: a bad payload or a failed write is logged
// and the registration still succeeds.
func (s *Store) CreateAccount(ctx context.Context, reg Registration) Result {
	if reg.Email == "" || len(reg.Password) == 0 {
		return failure("email and password are required", ErrInvalidRegistration)
	}

	if s.root == nil {
		if !s.RequestDirectoryAccess(ctx) {
			return failure("storage directory unavailable", ErrDirectoryUnavailable)
		}
	}

	acc := &Account{
		ID:          s.newID(),
		DisplayName: reg.DisplayName,
		Email:       reg.Email,
		CreatedAt:   s.now().UTC(),
		Plan:        PlanFree,
	}

	if s.salted {
		salt := common.GenerateRandByteArray(saltSize)
		acc.Salt = hex.EncodeToString(salt)
		acc.HashScheme = SchemeArgon2id
		acc.PasswordHash = cryptox.HashPasswordSalted(reg.Password, salt)
	} else {
		acc.HashScheme = SchemeSHA256
		acc.PasswordHash = cryptox.HashPassword(reg.Password)
	}

	key := SanitizeEmailKey(reg.Email)

	sub, err := s.root.Child(key, true)
	if err != nil {
		s.log.Error(ctx, "creating account directory failed", "key", key, "error", err)
		return failure("could not create the account storage", fmt.Errorf("account dir %s: %w", key, err))
	}

	if sub.Exists(recordFileName) {
		return failure("an account with this email already exists", ErrAccountExists)
	}

	var avatar []byte
	if reg.Avatar != "" {
		avatar, err = decodeAvatar(reg.Avatar)
		if err != nil {
			s.log.Warn(ctx, "avatar payload not usable, continuing without it", "error", err)
			avatar = nil
		} else {
			acc.AvatarRef = avatarFileName
		}
	}

	data, err := json.MarshalIndent(acc, "", "  ")
	if err != nil {
		return failure("could not encode the account record", fmt.Errorf("encode record: %w", err))
	}
	if err := sub.WriteFile(recordFileName, data); err != nil {
		s.log.Error(ctx, "writing account record failed", "key", key, "error", err)
		return failure("could not store the account record", fmt.Errorf("write record: %w", err))
	}

	if avatar != nil {
		if err := sub.WriteFile(avatarFileName, avatar); err != nil {
			s.log.Warn(ctx, "writing avatar failed, account kept", "key", key, "error", err)
		}
	}

	s.log.Info(ctx, "account created", "key", key, "plan", acc.Plan)
	return success("account created")
}

// Login verifies the credentials against the stored record and, on success,
// activates the session and persists its snapshot. A missing storage root
// fails with ErrDirectoryUnavailable; unlike CreateAccount, no grant prompt
// is triggered here.
func (s *Store) Login(ctx context.Context, email string, password []byte) (*Account, Result) {
	if s.root == nil {
		return nil, failure("storage directory unavailable", ErrDirectoryUnavailable)
	}

	key := SanitizeEmailKey(email)

	sub, err := s.root.Child(key, false)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, failure(loginFailedMsg, ErrAccountNotFound)
		}
		return nil, failure(loginFailedMsg, fmt.Errorf("account dir %s: %w", key, err))
	}

	data, err := sub.ReadFile(recordFileName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, failure(loginFailedMsg, ErrAccountNotFound)
		}
		return nil, failure(loginFailedMsg, fmt.Errorf("read record %s: %w", key, err))
	}

	var acc Account
	if err := json.Unmarshal(data, &acc); err != nil {
		s.log.Error(ctx, "account record unreadable", "key", key, "error", err)
		return nil, failure(loginFailedMsg, fmt.Errorf("decode record %s: %w", key, err))
	}

	candidate, err := s.candidateDigest(&acc, password)
	if err != nil {
		return nil, failure(loginFailedMsg, err)
	}
	if !cryptox.VerifyDigest(acc.PasswordHash, candidate) {
		return nil, failure(loginFailedMsg, ErrInvalidCredentials)
	}

	if acc.AvatarRef != "" {
		avatar, err := sub.ReadFile(acc.AvatarRef)
		if err != nil {
			// Absent avatar is tolerated; the session just has none.
			s.log.Debug(ctx, "avatar not loaded", "key", key, "error", err)
		} else {
			acc.Avatar = avatar
		}
	}

	s.current = &acc
	s.state = StateLoggedIn

	if err := s.persistSession(ctx, &acc); err != nil {
		s.log.Warn(ctx, "session snapshot not persisted", "error", err)
	}

	s.log.Info(ctx, "login successful", "key", key)
	return &acc, success("login successful")
}

// candidateDigest recomputes the digest of password using the scheme the
// stored record declares.
func (s *Store) candidateDigest(acc *Account, password []byte) (string, error) {
	switch acc.HashScheme {
	case SchemeArgon2id:
		salt, err := hex.DecodeString(acc.Salt)
		if err != nil {
			return "", fmt.Errorf("decode salt: %w", err)
		}
		return cryptox.HashPasswordSalted(password, salt), nil
	case "", SchemeSHA256:
		return cryptox.HashPassword(password), nil
	default:
		return "", fmt.Errorf("unknown hash scheme %q", acc.HashScheme)
	}
}

// persistSession writes the user record and the login marker in one
// transaction, so a restart never observes one without the other.
func (s *Store) persistSession(ctx context.Context, acc *Account) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := snapshot.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, snapshot.KeyCurrentUser, data); err != nil {
			return err
		}
		return repo.Set(ctx, snapshot.KeyIsLoggedIn, []byte("true"))
	})
}

// Logout always succeeds: the session is cleared, the storage root grant is
// retained, and the persisted snapshot is removed (the directory ref stays,
// so the next start can still recover the grant).
func (s *Store) Logout(ctx context.Context) Result {
	s.current = nil
	if s.root != nil {
		s.state = StateReady
	} else {
		s.state = StateDirectoryUnset
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := snapshot.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, snapshot.KeyCurrentUser); err != nil {
			return err
		}
		return repo.Delete(ctx, snapshot.KeyIsLoggedIn)
	})
	if err != nil {
		s.log.Warn(ctx, "clearing session snapshot failed", "error", err)
	}

	s.log.Info(ctx, "logged out")
	return success("logged out")
}

// RestoreSession activates a session from the persisted snapshot. Both the
// user record and the explicit login marker must be present; the snapshot
// is trusted verbatim, without re-reading the account record or the
// password hash. Anything unparseable or incomplete is treated as an absent
// snapshot and leaves the state unchanged.
func (s *Store) RestoreSession(ctx context.Context) bool {
	repo := s.snapshots()

	marker, err := repo.Get(ctx, snapshot.KeyIsLoggedIn)
	if err != nil || string(marker) != "true" {
		return false
	}

	data, err := repo.Get(ctx, snapshot.KeyCurrentUser)
	if err != nil || len(data) == 0 {
		return false
	}

	var acc Account
	if err := json.Unmarshal(data, &acc); err != nil {
		s.log.Warn(ctx, "session snapshot unreadable, ignoring", "error", err)
		return false
	}
	if acc.Email == "" {
		s.log.Warn(ctx, "session snapshot incomplete, ignoring")
		return false
	}

	s.current = &acc
	s.state = StateLoggedIn
	s.log.Info(ctx, "session restored", "email", acc.Email)
	return true
}
