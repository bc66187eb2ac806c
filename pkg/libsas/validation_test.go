package libsas_test

import (
	"net/http"
	"testing"

	"github.com/mdouchement/simpleauthstore/pkg/libsas"
	"github.com/stretchr/testify/assert"
)

func TestClient_Validation(t *testing.T) {
	client, m, hook := setup(t, http.StatusOK, `{"data": {}}`)

	data := []struct {
		name    string
		call    func() error
		message string
	}{
		{
			name:    "signup without username",
			call:    func() error { _, err := client.Signup("", "pw"); return err },
			message: "Username and password are required for signup",
		},
		{
			name:    "signup without password",
			call:    func() error { _, err := client.Signup("alice", ""); return err },
			message: "Username and password are required for signup",
		},
		{
			name:    "login without username",
			call:    func() error { _, err := client.Login("", "pw"); return err },
			message: "Username and password are required for login",
		},
		{
			name:    "login without password",
			call:    func() error { _, err := client.Login("alice", ""); return err },
			message: "Username and password are required for login",
		},
		{
			name:    "read user without session",
			call:    func() error { _, err := client.ReadUser("alice", ""); return err },
			message: "Session ID is required to read user data",
		},
		{
			name:    "read user without anything",
			call:    func() error { _, err := client.ReadUser("", ""); return err },
			message: "Session ID is required to read user data",
		},
		{
			name:    "read user without username",
			call:    func() error { _, err := client.ReadUser("", "S1"); return err },
			message: "Username is required to read user data",
		},
		{
			name:    "write public without session",
			call:    func() error { _, err := client.WriteUserPublic("", "alice", `{}`); return err },
			message: "Session ID, username, and data are required for public data update",
		},
		{
			name:    "write public without username",
			call:    func() error { _, err := client.WriteUserPublic("S1", "", `{}`); return err },
			message: "Session ID, username, and data are required for public data update",
		},
		{
			name:    "write public without data",
			call:    func() error { _, err := client.WriteUserPublic("S1", "alice", ""); return err },
			message: "Session ID, username, and data are required for public data update",
		},
		{
			name:    "write public with invalid data",
			call:    func() error { _, err := client.WriteUserPublic("S1", "alice", `{"a":`); return err },
			message: "Invalid JSON data provided for public data update",
		},
		{
			name:    "write public value without data",
			call:    func() error { _, err := client.WriteUserPublicValue("S1", "alice", nil); return err },
			message: "Session ID, username, and data are required for public data update",
		},
		{
			name:    "write public value without session",
			call:    func() error { _, err := client.WriteUserPublicValue("", "alice", map[string]any{}); return err },
			message: "Session ID, username, and data are required for public data update",
		},
		{
			name:    "write private without session",
			call:    func() error { _, err := client.WriteUserPrivate("", "alice", `{}`); return err },
			message: "Session ID, username, and data are required for private data update",
		},
		{
			name:    "write private without username",
			call:    func() error { _, err := client.WriteUserPrivate("S1", "", `{}`); return err },
			message: "Session ID, username, and data are required for private data update",
		},
		{
			name:    "write private without data",
			call:    func() error { _, err := client.WriteUserPrivate("S1", "alice", ""); return err },
			message: "Session ID, username, and data are required for private data update",
		},
		{
			name:    "write private with invalid data",
			call:    func() error { _, err := client.WriteUserPrivate("S1", "alice", `not json`); return err },
			message: "Invalid JSON data provided for private data update",
		},
		{
			name:    "write private value without username",
			call:    func() error { _, err := client.WriteUserPrivateValue("S1", "", map[string]any{}); return err },
			message: "Session ID, username, and data are required for private data update",
		},
		{
			name:    "create shared item without session",
			call:    func() error { _, err := client.CreateSharedItem("", "groceries"); return err },
			message: "Session ID and description are required to create shared item",
		},
		{
			name:    "create shared item without description",
			call:    func() error { _, err := client.CreateSharedItem("S1", ""); return err },
			message: "Session ID and description are required to create shared item",
		},
		{
			name:    "read owned items without session",
			call:    func() error { _, err := client.ReadOwnedItems(""); return err },
			message: "Session ID is required to read owned items",
		},
		{
			name:    "read shared item without id",
			call:    func() error { _, err := client.ReadSharedItem("S1", ""); return err },
			message: "Shared item ID is required to read shared item",
		},
		{
			name:    "update shared item without session",
			call:    func() error { _, err := client.UpdateSharedItem("", "item1", `{}`); return err },
			message: "Session ID, shared item ID, and data are required to update shared item",
		},
		{
			name:    "update shared item without id",
			call:    func() error { _, err := client.UpdateSharedItem("S1", "", `{}`); return err },
			message: "Session ID, shared item ID, and data are required to update shared item",
		},
		{
			name:    "update shared item without data",
			call:    func() error { _, err := client.UpdateSharedItem("S1", "item1", ""); return err },
			message: "Session ID, shared item ID, and data are required to update shared item",
		},
		{
			name:    "update shared item with invalid data",
			call:    func() error { _, err := client.UpdateSharedItem("S1", "item1", `{'a': 1}`); return err },
			message: "Invalid JSON data provided for shared item update",
		},
		{
			name:    "update shared item value without data",
			call:    func() error { _, err := client.UpdateSharedItemValue("S1", "item1", nil); return err },
			message: "Session ID, shared item ID, and data are required to update shared item",
		},
		{
			name:    "update shared item value without session",
			call:    func() error { _, err := client.UpdateSharedItemValue("", "item1", map[string]any{}); return err },
			message: "Session ID, shared item ID, and data are required to update shared item",
		},
		{
			name:    "update shared item value without id",
			call:    func() error { _, err := client.UpdateSharedItemValue("S1", "", map[string]any{}); return err },
			message: "Session ID, shared item ID, and data are required to update shared item",
		},
		{
			name:    "manage access without session",
			call:    func() error { _, err := client.ManageAccess("", "bob", "item1", libsas.GrantReader); return err },
			message: "Session ID, subject user ID, shared item ID, and action are required to manage access",
		},
		{
			name:    "manage access without subject",
			call:    func() error { _, err := client.ManageAccess("S1", "", "item1", libsas.GrantReader); return err },
			message: "Session ID, subject user ID, shared item ID, and action are required to manage access",
		},
		{
			name:    "manage access without item",
			call:    func() error { _, err := client.ManageAccess("S1", "bob", "", libsas.GrantReader); return err },
			message: "Session ID, subject user ID, shared item ID, and action are required to manage access",
		},
		{
			name:    "manage access without action",
			call:    func() error { _, err := client.ManageAccess("S1", "bob", "item1", ""); return err },
			message: "Session ID, subject user ID, shared item ID, and action are required to manage access",
		},
	}

	for _, d := range data {
		err := d.call()

		assert.EqualError(t, err, d.message, d.name)
		assert.True(t, libsas.IsKind(err, libsas.KindValidation), d.name)
		assert.Zero(t, libsas.StatusCode(err), d.name)
	}

	// Nothing reached the network nor the logs.
	assert.Empty(t, m.Requests())
	assert.Empty(t, hook.AllEntries())
}
