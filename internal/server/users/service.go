package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/server/config"
	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/dmitrijs2005/userhub/internal/shared"
)

// cacheWarmTimeout bounds the best-effort cache write after a successful
// registration so it cannot stretch the request's critical path.
const cacheWarmTimeout = 250 * time.Millisecond

// PasswordHasher derives and verifies stored credential hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// Service orchestrates registration: validation, credential hashing,
// the durable insert, and an opportunistic cache warm. It owns the
// mapping from store errors to the sentinels exposed to the transport.
type Service struct {
	repo     Repository
	cache    Cache
	hasher   PasswordHasher
	logger   logging.Logger
	cacheTTL time.Duration
}

func NewService(repo Repository, cache Cache, hasher PasswordHasher, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		hasher:   hasher,
		logger:   logger.With("module", "users_service"),
		cacheTTL: cfg.CacheTTL,
	}
}

// Register validates the request, derives the credential hash and creates
// the user. The insert is the sole durability boundary: uniqueness
// conflicts surface as shared.ErrorAlreadyExists, all other failures as
// shared.ErrorInternal. The cache warm afterwards is best-effort and can
// never fail the registration.
func (s *Service) Register(ctx context.Context, req *RegistrationRequest) (*models.User, error) {

	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, shared.ErrorInternal
	}

	now := time.Now().UTC()
	user := &models.User{
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: hash,
		Status:       models.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, shared.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "user insert failed", "error", err,
			"unavailable", errors.Is(err, shared.ErrorUnavailable))
		return nil, shared.ErrorInternal
	}

	s.warmCache(ctx, created)

	return created, nil
}

// GetByID serves a user from the cache when possible, falling back to the
// store and re-warming the cache on a miss. Absence maps to
// shared.ErrorNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.User, error) {

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey(id)); err == nil {
			var cu cachedUser
			if err := json.Unmarshal([]byte(data), &cu); err == nil {
				return cu.user(), nil
			}
			s.logger.Warn(ctx, "malformed cache entry", "key", cacheKey(id))
		} else if !errors.Is(err, shared.ErrorNotFound) {
			s.logger.Warn(ctx, "cache read failed", "key", cacheKey(id), "error", err)
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, shared.ErrorInternal
	}
	if user == nil {
		return nil, shared.ErrorNotFound
	}

	s.warmCache(ctx, user)

	return user, nil
}

// warmCache writes the sanitized user entry under its own short deadline,
// detached from the caller's cancellation. The outcome is only logged;
// it is never joined into the caller's result.
func (s *Service) warmCache(ctx context.Context, user *models.User) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(newCachedUser(user))
	if err != nil {
		s.logger.Warn(ctx, "cache entry encoding failed", "user_id", user.ID, "error", err)
		return
	}

	cacheCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWarmTimeout)
	defer cancel()

	if err := s.cache.Set(cacheCtx, cacheKey(user.ID), string(payload), s.cacheTTL); err != nil {
		s.logger.Warn(ctx, "cache warm failed", "user_id", user.ID, "error", err)
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// cachedUser is the sanitized cache representation: the credential hash
// never enters the cache.
type cachedUser struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"username"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCachedUser(u *models.User) *cachedUser {
	return &cachedUser{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (c *cachedUser) user() *models.User {
	return &models.User{
		ID:        c.ID,
		UserName:  c.UserName,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
