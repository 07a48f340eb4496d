package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/momokapoolz/calories-app-gateway/models"
)

// ErrSessionNotFound is returned by a TokenStore when no session exists for
// the presented access token id.
var ErrSessionNotFound = errors.New("session not found")

// TokenStore persists sessions keyed by access token id. Only token ids and
// the owning user are stored; nothing else in the gateway is persisted.
type TokenStore interface {
	Get(ctx context.Context, accessTokenID string) (*models.AuthSession, error)
	Set(ctx context.Context, session *models.AuthSession) error
	Delete(ctx context.Context, accessTokenID string) error
}

// MemoryTokenStore is the fallback store when Redis is not configured.
type MemoryTokenStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.AuthSession
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{sessions: make(map[string]*models.AuthSession)}
}

func (m *MemoryTokenStore) Get(_ context.Context, accessTokenID string) (*models.AuthSession, error) {
	m.mu.RLock()
	s, ok := m.sessions[accessTokenID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryTokenStore) Set(_ context.Context, session *models.AuthSession) error {
	m.mu.Lock()
	m.sessions[session.AccessTokenID] = session
	m.mu.Unlock()
	return nil
}

func (m *MemoryTokenStore) Delete(_ context.Context, accessTokenID string) error {
	m.mu.Lock()
	delete(m.sessions, accessTokenID)
	m.mu.Unlock()
	return nil
}

// RedisTokenStore keeps sessions in Redis with a TTL so abandoned sessions
// expire on their own.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

func sessionKey(accessTokenID string) string {
	return "session:" + accessTokenID
}

func (r *RedisTokenStore) Get(ctx context.Context, accessTokenID string) (*models.AuthSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(accessTokenID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.AuthSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisTokenStore) Set(ctx context.Context, session *models.AuthSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.AccessTokenID), raw, r.ttl).Err()
}

func (r *RedisTokenStore) Delete(ctx context.Context, accessTokenID string) error {
	return r.client.Del(ctx, sessionKey(accessTokenID)).Err()
}

// SessionService owns the AuthSession lifecycle: created on login, refreshed
// on demand, destroyed on logout, account deletion or backend 401.
type SessionService struct {
	client *BackendClient
	store  TokenStore
}

func NewSessionService(client *BackendClient, store TokenStore) *SessionService {
	return &SessionService{client: client, store: store}
}

func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*models.AuthSession, error) {
	session, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	return s.client.Register(ctx, req)
}

func (s *SessionService) CookieLogin(ctx context.Context, cookie string) (*models.AuthSession, error) {
	session, err := s.client.CookieLogin(ctx, cookie)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout destroys the session both upstream and locally. The local entry is
// removed even when the backend call fails; a dangling token id is worse
// than an extra backend 401.
func (s *SessionService) Logout(ctx context.Context, accessTokenID string) error {
	err := s.client.Logout(ctx, accessTokenID)
	if delErr := s.store.Delete(ctx, accessTokenID); delErr != nil && err == nil {
		err = delErr
	}
	return err
}

// Resolve maps a presented access token id to its session.
func (s *SessionService) Resolve(ctx context.Context, accessTokenID string) (*models.AuthSession, error) {
	session, err := s.store.Get(ctx, accessTokenID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, &APIError{
			Kind:    ErrKindUnauthorized,
			Status:  http.StatusUnauthorized,
			Message: "authentication required",
		}
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Refresh exchanges a refresh token id for a new session. The old access
// token entry is removed so it cannot be replayed.
func (s *SessionService) Refresh(ctx context.Context, oldAccessTokenID, refreshTokenID string) (*models.AuthSession, error) {
	session, err := s.client.Refresh(ctx, refreshTokenID)
	if err != nil {
		return nil, err
	}
	if oldAccessTokenID != "" {
		_ = s.store.Delete(ctx, oldAccessTokenID)
	}
	if err := s.store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Status(ctx context.Context, accessTokenID string) (*models.AuthSession, error) {
	session, err := s.client.AuthStatus(ctx, accessTokenID)
	if IsUnauthorized(err) {
		// Backend says the token is dead; drop the local entry too.
		_ = s.store.Delete(ctx, accessTokenID)
	}
	return session, err
}

// ---------- profile ----------

func (s *SessionService) Profile(ctx context.Context, accessTokenID string) (*models.User, error) {
	return s.client.GetProfile(ctx, accessTokenID)
}

func (s *SessionService) UpdateProfile(ctx context.Context, accessTokenID string, req UpdateProfileRequest) (*models.User, error) {
	return s.client.UpdateProfile(ctx, accessTokenID, req)
}

func (s *SessionService) UpdatePassword(ctx context.Context, accessTokenID string, req UpdatePasswordRequest) error {
	return s.client.UpdatePassword(ctx, accessTokenID, req)
}

// DeleteAccount removes the account upstream and destroys the local session.
func (s *SessionService) DeleteAccount(ctx context.Context, accessTokenID string) error {
	if err := s.client.DeleteAccount(ctx, accessTokenID); err != nil {
		return err
	}
	return s.store.Delete(ctx, accessTokenID)
}
