package service

import (
	"encoding/json"
	"net/http"

	"github.com/mdouchement/simpleauthstore/internal/sferror"
)

// Item keys handled by the server.
const (
	KeyUser   = "USER"
	KeyShared = "SHARED"
)

type (
	// A Render is an arbitrary payload serializable in JSON by the API.
	Render any

	// Params are the basic fields used in requests.
	Params struct {
		SessionID string `json:"session_id"`
		UserAgent string `json:"-"`
	}

	// ItemParams identifies an item.
	ItemParams struct {
		Params
		ItemKey     string `json:"item_key"`
		ItemSortKey string `json:"item_sort_key"`
	}

	// UpdateParams are used to update an item.
	UpdateParams struct {
		ItemParams
		Item ItemPayload `json:"item"`
	}

	// ItemPayload is the item sent by clients on update.
	// Data fields are kept raw so an absent field can be told apart from an empty one.
	ItemPayload struct {
		Key         string          `json:"key"`
		SortKey     string          `json:"sort_key"`
		PublicData  json.RawMessage `json:"public_data"`
		PrivateData json.RawMessage `json:"private_data"`
		SharedData  json.RawMessage `json:"shared_data"`
	}

	// CreateItemParams are used to create a shared item.
	CreateItemParams struct {
		Params
		Description string `json:"description"`
	}

	// AccessParams are used to manage access on a shared item.
	AccessParams struct {
		ItemParams
		SubjectUserID string `json:"subject_user_id"`
		Action        string `json:"action"`
	}
)

// present returns true if the field has been sent with a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// object parses the given data field, only JSON objects are stored.
func object(raw json.RawMessage) (map[string]any, error) {
	var v map[string]any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, sferror.New(http.StatusBadRequest, "Data must be a JSON object.")
	}
	return v, nil
}
