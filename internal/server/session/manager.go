package session

import (
	"net/http"
	"time"

	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
	"github.com/pkg/errors"
)

const (
	// TokenLength is the length of generated session ids.
	TokenLength = 24
	// DefaultTTL is the session lifetime used when none is configured.
	DefaultTTL = 24 * time.Hour
)

type (
	// A Manager manages sessions.
	Manager interface {
		// Create creates and stores a new session for the given user.
		Create(user *model.User, userAgent string) (*model.Session, error)
		// Validate returns the session of the given token if it is still valid.
		Validate(token string) (*model.Session, error)
		// User returns the user owning the given session token.
		User(token string) (*model.User, error)
	}

	manager struct {
		db  database.Client
		ttl time.Duration
	}
)

// NewManager returns a new manager.
func NewManager(db database.Client, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &manager{
		db:  db,
		ttl: ttl,
	}
}

func (m *manager) Create(user *model.User, userAgent string) (*model.Session, error) {
	if err := m.db.DeleteExpiredSessions(); err != nil {
		return nil, err
	}

	session := &model.Session{
		ExpireAt:  time.Now().Add(m.ttl).UTC(),
		UserID:    user.ID,
		UserAgent: userAgent,
		Token:     SecureToken(TokenLength),
	}

	err := m.db.Save(session)
	return session, errors.Wrap(err, "could not save session")
}

func (m *manager) Validate(token string) (*model.Session, error) {
	session, err := m.db.FindSessionByToken(token)
	if err != nil {
		if m.db.IsNotFound(err) {
			return nil, sferror.New(http.StatusUnauthorized, "Invalid session.")
		}
		return nil, errors.Wrap(err, "could not get access to database")
	}

	if session.Expired(time.Now()) {
		return nil, sferror.New(http.StatusUnauthorized, "Session expired.")
	}

	return session, nil
}

func (m *manager) User(token string) (*model.User, error) {
	session, err := m.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := m.db.FindUser(session.UserID)
	if err != nil {
		if m.db.IsNotFound(err) {
			return nil, sferror.New(http.StatusUnauthorized, "Invalid session.")
		}
		return nil, errors.Wrap(err, "could not get access to database")
	}

	return user, nil
}
