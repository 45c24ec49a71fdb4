package store

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "a2a:session:"

// SessionStore keeps sessions in Redis with an in-process go-cache fallback.
// When the Redis write fails the entry lands in the local cache with the same
// TTL, so "last reply" context survives a cache-tier outage on one instance.
type SessionStore struct {
	rdb   *redis.Client
	local *gocache.Cache
	ttl   time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		rdb:   rdb,
		local: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if s.rdb != nil {
		err := s.rdb.Set(ctx, sessionKeyPrefix+session.ID, payload, s.ttl).Err()
		if err == nil {
			return nil
		}
		// Redis write failed: keep the entry locally, surface the error so
		// the caller can log it.
		s.local.Set(session.ID, session, gocache.DefaultExpiration)
		return err
	}

	s.local.Set(session.ID, session, gocache.DefaultExpiration)
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Session, bool) {
	if s.rdb != nil {
		payload, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
		if err == nil {
			var session Session
			if err := json.Unmarshal(payload, &session); err == nil {
				return &session, true
			}
		}
	}

	if x, found := s.local.Get(sessionID); found {
		return x.(*Session), true
	}
	return nil, false
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) {
	if s.rdb != nil {
		s.rdb.Del(ctx, sessionKeyPrefix+sessionID)
	}
	s.local.Delete(sessionID)
}
