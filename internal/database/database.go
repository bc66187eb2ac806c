package database

import (
	"github.com/mdouchement/simpleauthstore/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool
		// IsAlreadyExists returns true if err is a unique constraint violation.
		IsAlreadyExists(err error) bool

		UserInteraction
		SessionInteraction
		ItemInteraction
	}

	// An UserInteraction defines all the methods used to interact with a user record.
	UserInteraction interface {
		// FindUser returns the user for the given id (UUID).
		FindUser(id string) (*model.User, error)
		// FindUserByUsername returns the user for the given username.
		FindUserByUsername(username string) (*model.User, error)
		// DeleteUser removes the user, its sessions, its grants and the items left without owner.
		DeleteUser(user *model.User) error
	}

	// An SessionInteraction defines all the methods used to interact with a session record.
	SessionInteraction interface {
		// FindSessionByToken returns the session for the given token.
		FindSessionByToken(token string) (*model.Session, error)
		// DeleteExpiredSessions removes from database all the expired sessions.
		DeleteExpiredSessions() error
	}

	// An ItemInteraction defines all the methods used to interact with shared item record(s).
	ItemInteraction interface {
		// FindItem returns the shared item for the given id (UUID).
		FindItem(id string) (*model.Item, error)
		// FindGrants returns all the grants of the given item.
		FindGrants(itemID string) ([]*model.Grant, error)
		// FindGrant returns the grant matching the given parameters.
		FindGrant(itemID, subject, role string) (*model.Grant, error)
		// FindItemsBySubjectRole returns the items on which subject has the given role.
		FindItemsBySubjectRole(subject, role string) ([]*model.Item, error)
	}
)
