package serializer

import (
	"github.com/mdouchement/simpleauthstore/internal/model"
)

// Item keys rendered in items.
const (
	keyUser   = "USER"
	keyShared = "SHARED"
)

// Session serializes the render of a session.
func Session(m *model.Session) any {
	return map[string]any{
		"session_id": m.Token,
		"expire_at":  m.ExpireAt.UTC(),
	}
}

// User serializes the render of a USER item.
// Private data are only rendered to the user themself.
func User(m *model.User, self bool) any {
	r := map[string]any{
		"key":         keyUser,
		"sort_key":    m.Username,
		"public_data": data(m.PublicData),
		"created_at":  m.CreatedAt,
		"updated_at":  m.UpdatedAt,
	}
	if self {
		r["private_data"] = data(m.PrivateData)
	}
	return r
}

// Item serializes the render of a SHARED item.
func Item(m *model.Item, grants []*model.Grant) any {
	r := map[string]any{
		"key":         keyShared,
		"sort_key":    m.ID,
		"description": m.Description,
		"shared_data": data(m.SharedData),
		"created_at":  m.CreatedAt,
		"updated_at":  m.UpdatedAt,
	}
	for k, v := range Access(grants) {
		r[k] = v
	}
	return r
}

// Access serializes the access lists of an item.
func Access(grants []*model.Grant) map[string]any {
	access := map[string][]string{
		model.RoleOwner:  {},
		model.RoleWriter: {},
		model.RoleReader: {},
	}
	for _, g := range grants {
		access[g.Role] = append(access[g.Role], g.Subject)
	}

	return map[string]any{
		"owners":  access[model.RoleOwner],
		"writers": access[model.RoleWriter],
		"readers": access[model.RoleReader],
	}
}

func data(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
