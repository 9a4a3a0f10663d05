package session

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/pizzatime/storefront/internal/catalog"
	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/metrics"
)

// Store keeps sessions in memory, indexed by a keyed hash of the session
// token so raw tokens are never held
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	hashKey  []byte
	ttl      time.Duration
	catalog  *catalog.Catalog
	metrics  metrics.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore(cfg config.SessionConfig, cat *catalog.Catalog, rec metrics.Recorder, logger *zap.Logger) (*Store, error) {
	key := []byte(cfg.HashKey)
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("session hash key must be at most %d bytes", blake2b.Size)
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Store{
		sessions: make(map[string]*Session),
		hashKey:  key,
		ttl:      cfg.TTL,
		catalog:  cat,
		metrics:  rec,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Resolve returns the session for token, creating a fresh one with a new
// token when token is empty, unknown or expired
func (s *Store) Resolve(token string) (sess *Session, newToken string, created bool) {
	if token != "" {
		if sess, ok := s.Get(token); ok {
			return sess, token, false
		}
	}
	newToken, sess = s.Create()
	return sess, newToken, true
}

// Get looks up a live session and marks it as used
func (s *Store) Get(token string) (*Session, bool) {
	key := s.hash(token)
	now := s.now()

	s.mu.RLock()
	sess, ok := s.sessions[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if sess.idleSince(now) > s.ttl {
		s.remove(key)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a new session and returns its token
func (s *Store) Create() (string, *Session) {
	token := uuid.NewString()
	sess := New(s.catalog, s.metrics, s.logger)
	sess.touch(s.now())

	s.mu.Lock()
	s.sessions[s.hash(token)] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SessionsActive(n)
	s.logger.Debug("Session created", zap.String("session", sess.ID.String()))
	return token, sess
}

// Len returns the number of sessions held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	removed := 0
	for key, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, key)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Info("Expired sessions evicted", zap.Int("removed", removed), zap.Int("remaining", n))
	}
	s.metrics.SessionsActive(n)
	return removed
}

// Run sweeps every interval until ctx is cancelled
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

func (s *Store) remove(key string) {
	s.mu.Lock()
	delete(s.sessions, key)
	n := len(s.sessions)
	s.mu.Unlock()
	s.metrics.SessionsActive(n)
}

func (s *Store) hash(token string) string {
	// New256 only fails for keys longer than 64 bytes, checked in NewStore
	h, _ := blake2b.New256(s.hashKey)
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}
