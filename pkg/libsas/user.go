package libsas

import (
	"encoding/json"
)

const (
	endpointRead   = "data/read"
	endpointUpdate = "data/update"
)

// Data fields of an item payload.
const (
	fieldPublicData  = "public_data"
	fieldPrivateData = "private_data"
	fieldSharedData  = "shared_data"
)

func (c *client) ReadUser(username, sessionID string) (Item, error) {
	var item Item

	if err := required("Session ID is required to read user data", sessionID); err != nil {
		return item, err
	}
	if err := required("Username is required to read user data", username); err != nil {
		return item, err
	}

	err := c.request(endpointRead, p{
		"session_id":    sessionID,
		"item_key":      KeyUser,
		"item_sort_key": username,
	}, &item)
	return item, err
}

func (c *client) WriteUserPublic(sessionID, username, data string) (Item, error) {
	return c.writeUserText(fieldPublicData, sessionID, username, data,
		"Session ID, username, and data are required for public data update",
		"Invalid JSON data provided for public data update",
	)
}

func (c *client) WriteUserPublicValue(sessionID, username string, data map[string]any) (Item, error) {
	if data == nil {
		return Item{}, validationError("Session ID, username, and data are required for public data update")
	}
	return c.writeUser(fieldPublicData, sessionID, username, data,
		"Session ID, username, and data are required for public data update",
	)
}

func (c *client) WriteUserPrivate(sessionID, username, data string) (Item, error) {
	return c.writeUserText(fieldPrivateData, sessionID, username, data,
		"Session ID, username, and data are required for private data update",
		"Invalid JSON data provided for private data update",
	)
}

func (c *client) WriteUserPrivateValue(sessionID, username string, data map[string]any) (Item, error) {
	if data == nil {
		return Item{}, validationError("Session ID, username, and data are required for private data update")
	}
	return c.writeUser(fieldPrivateData, sessionID, username, data,
		"Session ID, username, and data are required for private data update",
	)
}

func (c *client) writeUserText(field, sessionID, username, data, missing, invalid string) (Item, error) {
	if err := required(missing, sessionID, username, data); err != nil {
		return Item{}, err
	}

	v, err := parseData(data, invalid)
	if err != nil {
		return Item{}, err
	}

	return c.writeUser(field, sessionID, username, v, missing)
}

func (c *client) writeUser(field, sessionID, username string, data any, missing string) (Item, error) {
	var item Item

	if err := required(missing, sessionID, username); err != nil {
		return item, err
	}

	err := c.request(endpointUpdate, p{
		"session_id":    sessionID,
		"item_key":      KeyUser,
		"item_sort_key": username,
		"item": p{
			field:      data,
			"sort_key": username,
			"key":      KeyUser,
		},
	}, &item)
	return item, err
}

// parseData parses JSON text into a structured value.
// Any JSON value is accepted, as long as it is well formed.
func parseData(data, message string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, validationError(message)
	}
	return v, nil
}
