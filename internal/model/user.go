package model

// A User represents a database record.
// Its username is the sort key of the USER items.
type User struct {
	Base `storm:"inline"`

	Username    string         `json:"username"     storm:"unique"`
	Password    string         `json:"password"`
	PublicData  map[string]any `json:"public_data"`
	PrivateData map[string]any `json:"private_data"`
}
