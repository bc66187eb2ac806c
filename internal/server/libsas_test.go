package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdouchement/simpleauthstore/pkg/libsas"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibsas(t *testing.T) {
	engine, _, _, cleanup := setup()
	defer cleanup()

	ts := httptest.NewServer(engine)
	defer ts.Close()

	logger, hook := test.NewNullLogger()
	client, err := libsas.NewClient(ts.Client(), ts.URL, libsas.WithLogger(logger))
	require.NoError(t, err)

	//
	// Authentication

	alice, err := client.Signup("alice", "password42")
	require.NoError(t, err)
	assert.NotEmpty(t, alice.SessionID)

	_, err = client.Signup("alice", "password42")
	assert.EqualError(t, err, "This username is already registered.")
	assert.Equal(t, http.StatusConflict, libsas.StatusCode(err))

	_, err = client.Login("alice", "wrong")
	assert.EqualError(t, err, "Invalid username or password.")
	assert.True(t, libsas.IsKind(err, libsas.KindServer))

	alice, err = client.Login("alice", "password42")
	require.NoError(t, err)

	bob, err := client.Signup("bob", "password42")
	require.NoError(t, err)

	//
	// User data round-trip

	_, err = client.WriteUserPublic(alice.SessionID, "alice", `{"a":1}`)
	require.NoError(t, err)
	_, err = client.WriteUserPrivate(alice.SessionID, "alice", `{"b":2}`)
	require.NoError(t, err)

	user, err := client.ReadUser("alice", alice.SessionID)
	require.NoError(t, err)
	assert.Equal(t, libsas.KeyUser, user.Key)
	assert.Equal(t, map[string]any{"a": float64(1)}, user.PublicData)
	assert.Equal(t, map[string]any{"b": float64(2)}, user.PrivateData)

	user, err = client.ReadUser("alice", bob.SessionID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, user.PublicData)
	assert.Nil(t, user.PrivateData)

	_, err = client.WriteUserPublicValue(bob.SessionID, "alice", map[string]any{"hacked": true})
	assert.Equal(t, http.StatusForbidden, libsas.StatusCode(err))

	//
	// Shared items

	item, err := client.CreateSharedItem(alice.SessionID, "groceries")
	require.NoError(t, err)
	assert.Equal(t, libsas.KeySharedItem, item.Key)
	assert.Equal(t, "groceries", item.Description)
	assert.NotEmpty(t, item.SortKey)

	_, err = client.UpdateSharedItem(alice.SessionID, item.SortKey, `{"milk":2}`)
	require.NoError(t, err)

	items, err := client.ReadOwnedItems(alice.SessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.SortKey, items[0].SortKey)
	assert.Equal(t, map[string]any{"milk": float64(2)}, items[0].SharedData)

	_, err = client.ReadSharedItem("", item.SortKey)
	assert.Equal(t, http.StatusUnauthorized, libsas.StatusCode(err))

	_, err = client.ReadSharedItem(bob.SessionID, item.SortKey)
	assert.Equal(t, http.StatusForbidden, libsas.StatusCode(err))

	access, err := client.ManageAccess(alice.SessionID, "bob", item.SortKey, libsas.GrantWriter)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owners":["alice"],"writers":["bob"],"readers":[]}`, string(access))

	_, err = client.UpdateSharedItemValue(bob.SessionID, item.SortKey, map[string]any{"eggs": 12})
	require.NoError(t, err)

	_, err = client.ManageAccess(alice.SessionID, libsas.Anyone, item.SortKey, libsas.GrantReader)
	require.NoError(t, err)

	shared, err := client.ReadSharedItem("", item.SortKey)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"eggs": float64(12)}, shared.SharedData)

	_, err = client.ManageAccess(alice.SessionID, "bob", item.SortKey, libsas.Action("PROMOTE"))
	assert.EqualError(t, err, "Invalid action.")

	// Every server failure has been logged once.
	assert.Len(t, hook.AllEntries(), 6)
}
