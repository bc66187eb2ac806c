package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/json"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
// Items hold free-form JSON payloads so they are stored as JSON.
var StormCodec = storm.Codec(json.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	for _, m := range []any{&model.User{}, &model.Session{}, &model.Item{}, &model.Grant{}} {
		if err := db.Init(m); err != nil {
			return errors.Wrapf(err, "could not init %T index", m)
		}
	}
	return nil
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// IsAlreadyExists returns true if err is a unique constraint violation.
func (c *strm) IsAlreadyExists(err error) bool {
	return errors.Cause(err) == storm.ErrAlreadyExists
}

// FindUser returns the user for the given id (UUID).
func (c *strm) FindUser(id string) (*model.User, error) {
	var user model.User
	if err := c.db.One("ID", id, &user); err != nil {
		return nil, errors.Wrap(err, "find user by id")
	}
	return &user, nil
}

// FindUserByUsername returns the user for the given username.
func (c *strm) FindUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := c.db.One("Username", username, &user); err != nil {
		return nil, errors.Wrap(err, "find user by username")
	}
	return &user, nil
}

// DeleteUser removes the user, its sessions, its grants and the items left without owner.
func (c *strm) DeleteUser(user *model.User) error {
	owned, err := c.FindItemsBySubjectRole(user.Username, model.RoleOwner)
	if err != nil {
		return err
	}

	err = c.db.Select(q.Eq("UserID", user.ID)).Delete(&model.Session{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete sessions")
	}

	err = c.db.Select(q.Eq("Subject", user.Username)).Delete(&model.Grant{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete grants")
	}

	for _, item := range owned {
		var owners int
		owners, err = c.db.Select(q.Eq("ItemID", item.ID), q.Eq("Role", model.RoleOwner)).Count(&model.Grant{})
		if err != nil && !c.IsNotFound(err) {
			return errors.Wrap(err, "could not count item owners")
		}
		if owners > 0 {
			continue
		}

		err = c.db.Select(q.Eq("ItemID", item.ID)).Delete(&model.Grant{})
		if err != nil && !c.IsNotFound(err) {
			return errors.Wrap(err, "could not delete item grants")
		}
		if err = c.Delete(item); err != nil {
			return err
		}
	}

	return c.Delete(user)
}

// FindSessionByToken returns the session for the given token.
func (c *strm) FindSessionByToken(token string) (*model.Session, error) {
	var session model.Session
	if err := c.db.One("Token", token, &session); err != nil {
		return nil, errors.Wrap(err, "find session by token")
	}
	return &session, nil
}

// DeleteExpiredSessions removes from database all the expired sessions.
func (c *strm) DeleteExpiredSessions() error {
	err := c.db.Select(q.Lte("ExpireAt", time.Now())).Delete(&model.Session{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete expired sessions")
	}
	return nil
}

// FindItem returns the shared item for the given id (UUID).
func (c *strm) FindItem(id string) (*model.Item, error) {
	var item model.Item
	if err := c.db.One("ID", id, &item); err != nil {
		return nil, errors.Wrap(err, "could not find item")
	}
	return &item, nil
}

// FindGrants returns all the grants of the given item.
func (c *strm) FindGrants(itemID string) ([]*model.Grant, error) {
	grants := make([]*model.Grant, 0)
	err := c.db.Select(q.Eq("ItemID", itemID)).OrderBy("CreatedAt").Find(&grants)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find grants")
	}
	return grants, nil
}

// FindGrant returns the grant matching the given parameters.
func (c *strm) FindGrant(itemID, subject, role string) (*model.Grant, error) {
	var grant model.Grant
	err := c.db.Select(q.Eq("ItemID", itemID), q.Eq("Subject", subject), q.Eq("Role", role)).First(&grant)
	if err != nil {
		return nil, errors.Wrap(err, "could not find grant")
	}
	return &grant, nil
}

// FindItemsBySubjectRole returns the items on which subject has the given role.
func (c *strm) FindItemsBySubjectRole(subject, role string) ([]*model.Item, error) {
	grants := make([]*model.Grant, 0)
	err := c.db.Select(q.Eq("Subject", subject), q.Eq("Role", role)).OrderBy("CreatedAt").Find(&grants)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find grants by subject")
	}

	items := make([]*model.Item, 0, len(grants))
	for _, grant := range grants {
		item, err := c.FindItem(grant.ItemID)
		if err != nil {
			if c.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
