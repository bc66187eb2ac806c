package libsas

import (
	"bytes"
	"encoding/json"
)

// An ItemKey identifies the collection an item belongs to.
type ItemKey string

const (
	// KeyUser is the collection of user records, sorted by username.
	KeyUser ItemKey = "USER"
	// KeySharedItem is the collection of shared items, sorted by generated id.
	KeySharedItem ItemKey = "SHARED"
)

// An Action is an access modification applied on a shared item.
type Action string

// Access actions accepted by manage_access.
const (
	GrantReader  Action = "GRANT_READER"
	RevokeReader Action = "REVOKE_READER"
	GrantWriter  Action = "GRANT_WRITER"
	RevokeWriter Action = "REVOKE_WRITER"
	GrantOwner   Action = "GRANT_OWNER"
	RevokeOwner  Action = "REVOKE_OWNER"
)

// Anyone is the subject used to grant access to every user, authenticated or not.
const Anyone = "ANYONE"

// Actions returns all the known access actions.
func Actions() []Action {
	return []Action{GrantReader, RevokeReader, GrantWriter, RevokeWriter, GrantOwner, RevokeOwner}
}

// Valid returns true if a is one of the known actions.
// The server remains the authority, the Client never rejects an action locally.
func (a Action) Valid() bool {
	for _, action := range Actions() {
		if a == action {
			return true
		}
	}
	return false
}

// A Session holds the opaque token returned by signup and login.
type Session struct {
	SessionID string `json:"session_id"`
}

// UnmarshalJSON accepts both a bare session id string and a `{"session_id": ...}` object.
func (s *Session) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return json.Unmarshal(data, &s.SessionID)
	}

	var v struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.SessionID = v.SessionID
	return nil
}

// An Item is a USER or SHARED record stored by the server.
type Item struct {
	Key         ItemKey        `json:"key,omitempty"`
	SortKey     string         `json:"sort_key,omitempty"`
	Description string         `json:"description,omitempty"`
	PublicData  map[string]any `json:"public_data,omitempty"`
	PrivateData map[string]any `json:"private_data,omitempty"`
	SharedData  map[string]any `json:"shared_data,omitempty"`

	// Raw is the item as returned by the server, including unknown fields.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps a copy of the raw payload in Raw.
func (i *Item) UnmarshalJSON(data []byte) error {
	type item Item // Avoid recursion
	var v item
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*i = Item(v)
	i.Raw = append(json.RawMessage(nil), data...)
	return nil
}
