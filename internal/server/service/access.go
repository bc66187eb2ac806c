package service

import (
	"github.com/mdouchement/simpleauthstore/internal/model"
)

// An ACL answers access questions for an item from its grants.
type ACL struct {
	grants []*model.Grant
	roles  map[string]map[string]bool // subject => role => granted
}

// NewACL returns the ACL of the given grants.
func NewACL(grants []*model.Grant) *ACL {
	acl := &ACL{
		grants: grants,
		roles:  map[string]map[string]bool{},
	}
	for _, g := range grants {
		if acl.roles[g.Subject] == nil {
			acl.roles[g.Subject] = map[string]bool{}
		}
		acl.roles[g.Subject][g.Role] = true
	}
	return acl
}

func (a *ACL) has(username, role string) bool {
	if username != "" && a.roles[username][role] {
		return true
	}
	return a.roles[model.Anyone][role]
}

// IsOwner returns true if username owns the item.
// Ownership is never inherited from ANYONE.
func (a *ACL) IsOwner(username string) bool {
	return username != "" && a.roles[username][model.RoleOwner]
}

// CanWrite returns true if username is allowed to update the item.
func (a *ACL) CanWrite(username string) bool {
	return a.IsOwner(username) || (username != "" && a.has(username, model.RoleWriter))
}

// CanRead returns true if username is allowed to read the item.
// An empty username is an anonymous reader.
func (a *ACL) CanRead(username string) bool {
	return a.CanWrite(username) || a.has(username, model.RoleReader)
}

// Subjects returns the subjects holding the given role.
func (a *ACL) Subjects(role string) []string {
	subjects := []string{}
	for _, g := range a.grants {
		if g.Role == role {
			subjects = append(subjects, g.Subject)
		}
	}
	return subjects
}

// parseAction returns the role targeted by action and whether it is granted or revoked.
func parseAction(action string) (role string, grant, ok bool) {
	switch action {
	case "GRANT_READER":
		return model.RoleReader, true, true
	case "REVOKE_READER":
		return model.RoleReader, false, true
	case "GRANT_WRITER":
		return model.RoleWriter, true, true
	case "REVOKE_WRITER":
		return model.RoleWriter, false, true
	case "GRANT_OWNER":
		return model.RoleOwner, true, true
	case "REVOKE_OWNER":
		return model.RoleOwner, false, true
	default:
		return "", false, false
	}
}
