package redis

import (
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	sessionPrefix = "session:"
	// defaultMaxAge bounds the Redis TTL of browser-session cookies (MaxAge 0).
	defaultMaxAge = 86400 * 7
)

// sessionBackend is the subset of *redis.Client the store needs.
type sessionBackend interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionStore is a gorilla/sessions Store that keeps session values in Redis.
// The cookie only carries the signed session id.
// Key format: session:<id>
type SessionStore struct {
	client  sessionBackend
	codecs  []securecookie.Codec
	Options *sessions.Options
}

// NewSessionStore creates a SessionStore. keyPairs are passed to
// securecookie.CodecsFromPairs: hash key first, optional block key second.
func NewSessionStore(client sessionBackend, keyPairs ...[]byte) *SessionStore {
	s := &SessionStore{
		client: client,
		codecs: securecookie.CodecsFromPairs(keyPairs...),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
	s.MaxAge(s.Options.MaxAge)
	return s
}

// MaxAge sets the cookie lifetime and the signature expiry of every codec.
func (s *SessionStore) MaxAge(age int) {
	s.Options.MaxAge = age
	for _, c := range s.codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(age)
		}
	}
}

// Get returns the session cached in the request registry, loading it on first use.
func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session referenced by the request cookie. Missing, tampered
// or expired cookies yield a fresh session with an empty id, so a client can
// never choose its own session id. Only ids this store signed survive.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.codecs...); err != nil {
		session.ID = ""
		return session, nil
	}

	// On a load error the decoded id is kept so that destroying the
	// session still deletes its record.
	found, err := s.load(r.Context(), session)
	if err != nil {
		return session, err
	}
	if !found {
		session.ID = ""
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session and only then writes the cookie. A negative MaxAge
// deletes the record and expires the cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	ctx := r.Context()

	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(ctx, s.key(session.ID)).Err(); err != nil {
				return fmt.Errorf("session delete: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	if err := s.save(ctx, session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("session encode cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *SessionStore) save(ctx context.Context, session *sessions.Session) error {
	payload, err := encodeValues(session.Values)
	if err != nil {
		return err
	}

	age := session.Options.MaxAge
	if age == 0 {
		age = defaultMaxAge
	}
	if err := s.client.Set(ctx, s.key(session.ID), payload, time.Duration(age)*time.Second).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) load(ctx context.Context, session *sessions.Session) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(session.ID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("session load: %w", err)
	}

	values := map[string]interface{}{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return false, fmt.Errorf("session decode: %w", err)
	}
	for k, v := range values {
		session.Values[k] = v
	}
	return true, nil
}

func (s *SessionStore) key(id string) string {
	return sessionPrefix + id
}

// encodeValues serialises session values as JSON. Only string keys are
// supported.
func encodeValues(values map[interface{}]interface{}) ([]byte, error) {
	m := make(map[string]interface{}, len(values))
	for k, v := range values {
		ks, ok := k.(string)
		if !ok {
			return nil, fmt.Errorf("session encode: non-string key %v", k)
		}
		m[ks] = v
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("session encode: %w", err)
	}
	return b, nil
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}
