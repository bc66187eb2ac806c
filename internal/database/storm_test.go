package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) database.Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "simpleauthstore.db")
	require.NoError(t, database.StormInit(path))

	db, err := database.StormOpen(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func createUser(t *testing.T, db database.Client, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username}
	require.NoError(t, db.Save(user))
	return user
}

func createItem(t *testing.T, db database.Client, description string, grants map[string]string) *model.Item {
	t.Helper()

	item := &model.Item{Description: description, SharedData: map[string]any{}}
	require.NoError(t, db.Save(item))

	for subject, role := range grants {
		require.NoError(t, db.Save(&model.Grant{ItemID: item.ID, Subject: subject, Role: role}))
	}
	return item
}

func TestStorm_Save(t *testing.T) {
	db := setup(t)

	user := createUser(t, db, "alice")
	assert.NotEmpty(t, user.ID)
	assert.NotNil(t, user.CreatedAt)
	assert.NotNil(t, user.UpdatedAt)

	id := user.ID
	created := *user.CreatedAt
	user.PublicData = map[string]any{"nickname": "Al"}
	require.NoError(t, db.Save(user))
	assert.Equal(t, id, user.ID)
	assert.Equal(t, created, *user.CreatedAt)

	found, err := db.FindUser(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, map[string]any{"nickname": "Al"}, found.PublicData)

	found, err = db.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	_, err = db.FindUserByUsername("bob")
	assert.True(t, db.IsNotFound(err))
}

func TestStorm_UniqueUsername(t *testing.T) {
	db := setup(t)

	createUser(t, db, "alice")

	err := db.Save(&model.User{Username: "alice"})
	assert.True(t, db.IsAlreadyExists(err))
}

func TestStorm_Sessions(t *testing.T) {
	db := setup(t)
	user := createUser(t, db, "alice")

	expired := &model.Session{UserID: user.ID, Token: "expired", ExpireAt: time.Now().Add(-time.Minute)}
	require.NoError(t, db.Save(expired))
	alive := &model.Session{UserID: user.ID, Token: "alive", ExpireAt: time.Now().Add(time.Hour)}
	require.NoError(t, db.Save(alive))

	session, err := db.FindSessionByToken("expired")
	require.NoError(t, err)
	assert.Equal(t, expired.ID, session.ID)

	require.NoError(t, db.DeleteExpiredSessions())

	_, err = db.FindSessionByToken("expired")
	assert.True(t, db.IsNotFound(err))

	session, err = db.FindSessionByToken("alive")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)

	// Nothing to delete.
	require.NoError(t, db.DeleteExpiredSessions())
}

func TestStorm_Grants(t *testing.T) {
	db := setup(t)

	groceries := createItem(t, db, "groceries", map[string]string{"alice": model.RoleOwner, "bob": model.RoleReader})
	todo := createItem(t, db, "todo", map[string]string{"alice": model.RoleOwner})
	createItem(t, db, "secret", map[string]string{"bob": model.RoleOwner})

	item, err := db.FindItem(groceries.ID)
	require.NoError(t, err)
	assert.Equal(t, "groceries", item.Description)

	_, err = db.FindItem("unknown")
	assert.True(t, db.IsNotFound(err))

	grants, err := db.FindGrants(groceries.ID)
	require.NoError(t, err)
	assert.Len(t, grants, 2)

	grants, err = db.FindGrants("unknown")
	require.NoError(t, err)
	assert.Empty(t, grants)

	grant, err := db.FindGrant(groceries.ID, "bob", model.RoleReader)
	require.NoError(t, err)
	assert.Equal(t, groceries.ID, grant.ItemID)

	_, err = db.FindGrant(groceries.ID, "bob", model.RoleWriter)
	assert.True(t, db.IsNotFound(err))

	items, err := db.FindItemsBySubjectRole("alice", model.RoleOwner)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.ElementsMatch(t, []string{groceries.ID, todo.ID}, []string{items[0].ID, items[1].ID})

	items, err = db.FindItemsBySubjectRole("carol", model.RoleOwner)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorm_DeleteUser(t *testing.T) {
	db := setup(t)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, db.Save(&model.Session{UserID: alice.ID, Token: "alice", ExpireAt: time.Now().Add(time.Hour)}))
	require.NoError(t, db.Save(&model.Session{UserID: bob.ID, Token: "bob", ExpireAt: time.Now().Add(time.Hour)}))

	solo := createItem(t, db, "solo", map[string]string{"alice": model.RoleOwner, model.Anyone: model.RoleReader})
	shared := createItem(t, db, "shared", map[string]string{"alice": model.RoleOwner, "bob": model.RoleOwner})
	read := createItem(t, db, "read", map[string]string{"bob": model.RoleOwner, "alice": model.RoleWriter})

	require.NoError(t, db.DeleteUser(alice))

	_, err := db.FindUserByUsername("alice")
	assert.True(t, db.IsNotFound(err))
	_, err = db.FindSessionByToken("alice")
	assert.True(t, db.IsNotFound(err))

	// Items without owner are removed along with their grants.
	_, err = db.FindItem(solo.ID)
	assert.True(t, db.IsNotFound(err))
	grants, err := db.FindGrants(solo.ID)
	require.NoError(t, err)
	assert.Empty(t, grants)

	// Other items stay, without alice's grants.
	grants, err = db.FindGrants(shared.ID)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "bob", grants[0].Subject)

	grants, err = db.FindGrants(read.ID)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "bob", grants[0].Subject)

	// Bob is untouched.
	_, err = db.FindSessionByToken("bob")
	assert.NoError(t, err)
	_, err = db.FindUser(bob.ID)
	assert.NoError(t, err)
}
