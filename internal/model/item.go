package model

// Roles a subject can hold on a shared item.
const (
	RoleReader = "reader"
	RoleWriter = "writer"
	RoleOwner  = "owner"
)

// Anyone is the subject matching every user, including anonymous ones.
const Anyone = "ANYONE"

// An Item represents a SHARED item record.
// Its ID is the sort key of the SHARED items.
type Item struct {
	Base `storm:"inline"`

	Description string         `json:"description"`
	SharedData  map[string]any `json:"shared_data"`
}

// A Grant gives a role on an item to a subject (a username or Anyone).
type Grant struct {
	Base `storm:"inline"`

	ItemID  string `json:"item_id" storm:"index"`
	Subject string `json:"subject" storm:"index"`
	Role    string `json:"role"    storm:"index"`
}
