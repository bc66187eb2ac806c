package libsas

import (
	"encoding/json"
)

const (
	endpointCreateSharedItem = "data/create_shared_item"
	endpointReadOwnedItems   = "data/read_owned_items"
	endpointManageAccess     = "data/manage_access"
)

func (c *client) CreateSharedItem(sessionID, description string) (Item, error) {
	var item Item

	if err := required("Session ID and description are required to create shared item", sessionID, description); err != nil {
		return item, err
	}

	err := c.request(endpointCreateSharedItem, p{
		"session_id":  sessionID,
		"description": description,
	}, &item)
	return item, err
}

func (c *client) ReadOwnedItems(sessionID string) ([]Item, error) {
	items := []Item{}

	if err := required("Session ID is required to read owned items", sessionID); err != nil {
		return nil, err
	}

	err := c.request(endpointReadOwnedItems, p{
		"session_id": sessionID,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// The session is not required here, anonymous reads are allowed by the server
// for items shared with ANYONE.
func (c *client) ReadSharedItem(sessionID, sharedItemID string) (Item, error) {
	var item Item

	if err := required("Shared item ID is required to read shared item", sharedItemID); err != nil {
		return item, err
	}

	err := c.request(endpointRead, p{
		"session_id":    sessionID,
		"item_key":      KeySharedItem,
		"item_sort_key": sharedItemID,
	}, &item)
	return item, err
}

func (c *client) UpdateSharedItem(sessionID, sharedItemID, data string) (Item, error) {
	const missing = "Session ID, shared item ID, and data are required to update shared item"

	if err := required(missing, sessionID, sharedItemID, data); err != nil {
		return Item{}, err
	}

	v, err := parseData(data, "Invalid JSON data provided for shared item update")
	if err != nil {
		return Item{}, err
	}

	return c.updateSharedItem(sessionID, sharedItemID, v)
}

func (c *client) UpdateSharedItemValue(sessionID, sharedItemID string, data map[string]any) (Item, error) {
	const missing = "Session ID, shared item ID, and data are required to update shared item"

	if err := required(missing, sessionID, sharedItemID); err != nil {
		return Item{}, err
	}
	if data == nil {
		return Item{}, validationError(missing)
	}

	return c.updateSharedItem(sessionID, sharedItemID, data)
}

func (c *client) updateSharedItem(sessionID, sharedItemID string, data any) (Item, error) {
	var item Item

	err := c.request(endpointUpdate, p{
		"session_id":    sessionID,
		"item_key":      KeySharedItem,
		"item_sort_key": sharedItemID,
		"item": p{
			fieldSharedData: data,
			"sort_key":      sharedItemID,
			"key":           KeySharedItem,
		},
	}, &item)
	return item, err
}

func (c *client) ManageAccess(sessionID, subjectUserID, sharedItemID string, action Action) (json.RawMessage, error) {
	err := required("Session ID, subject user ID, shared item ID, and action are required to manage access",
		sessionID, subjectUserID, sharedItemID, string(action),
	)
	if err != nil {
		return nil, err
	}

	var data json.RawMessage
	err = c.request(endpointManageAccess, p{
		"session_id":      sessionID,
		"subject_user_id": subjectUserID,
		"item_sort_key":   sharedItemID,
		"item_key":        KeySharedItem,
		"action":          action,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data, nil
}
