package service

import (
	"net/http"

	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/mdouchement/simpleauthstore/internal/server/serializer"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
	"github.com/pkg/errors"
)

type (
	// An ItemService handles SHARED items and their access lists.
	ItemService interface {
		Create(current *model.User, params CreateItemParams) (Render, error)
		ReadOwned(current *model.User) (Render, error)
		// Read returns the item, current is nil for anonymous reads.
		Read(current *model.User, id string) (Render, error)
		Update(current *model.User, params UpdateParams) (Render, error)
		ManageAccess(current *model.User, params AccessParams) (Render, error)
	}

	itemService struct {
		db database.Client
	}
)

// NewItem returns a new ItemService.
func NewItem(db database.Client) ItemService {
	return &itemService{
		db: db,
	}
}

func (s *itemService) Create(current *model.User, params CreateItemParams) (Render, error) {
	item := &model.Item{
		Description: params.Description,
		SharedData:  map[string]any{},
	}
	if err := s.db.Save(item); err != nil {
		return nil, errors.Wrap(err, "could not persist item")
	}

	owner := &model.Grant{
		ItemID:  item.ID,
		Subject: current.Username,
		Role:    model.RoleOwner,
	}
	if err := s.db.Save(owner); err != nil {
		return nil, errors.Wrap(err, "could not persist item owner")
	}

	return serializer.Item(item, []*model.Grant{owner}), nil
}

func (s *itemService) ReadOwned(current *model.User) (Render, error) {
	items, err := s.db.FindItemsBySubjectRole(current.Username, model.RoleOwner)
	if err != nil {
		return nil, err
	}

	renders := make([]any, 0, len(items))
	for _, item := range items {
		grants, err := s.db.FindGrants(item.ID)
		if err != nil {
			return nil, err
		}
		renders = append(renders, serializer.Item(item, grants))
	}
	return renders, nil
}

func (s *itemService) Read(current *model.User, id string) (Render, error) {
	item, acl, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if !acl.CanRead(username(current)) {
		return nil, forbidden(current)
	}

	return serializer.Item(item, acl.grants), nil
}

func (s *itemService) Update(current *model.User, params UpdateParams) (Render, error) {
	item, acl, err := s.find(params.ItemSortKey)
	if err != nil {
		return nil, err
	}

	if !acl.CanWrite(current.Username) {
		return nil, forbidden(current)
	}

	if !present(params.Item.SharedData) {
		return nil, sferror.New(http.StatusBadRequest, "No data provided.")
	}
	if item.SharedData, err = object(params.Item.SharedData); err != nil {
		return nil, err
	}

	if err = s.db.Save(item); err != nil {
		return nil, errors.Wrap(err, "could not persist item")
	}

	return serializer.Item(item, acl.grants), nil
}

func (s *itemService) ManageAccess(current *model.User, params AccessParams) (Render, error) {
	role, grant, ok := parseAction(params.Action)
	if !ok {
		return nil, sferror.New(http.StatusBadRequest, "Invalid action.")
	}

	item, acl, err := s.find(params.ItemSortKey)
	if err != nil {
		return nil, err
	}

	if !acl.IsOwner(current.Username) {
		return nil, sferror.New(http.StatusForbidden, "Only owners can manage access.")
	}

	subject := params.SubjectUserID
	if subject == model.Anyone {
		if role == model.RoleOwner {
			return nil, sferror.New(http.StatusBadRequest, "ANYONE can not be owner.")
		}
	} else if _, err = s.db.FindUserByUsername(subject); err != nil {
		if s.db.IsNotFound(err) {
			return nil, sferror.New(http.StatusNotFound, "User not found.")
		}
		return nil, errors.Wrap(err, "could not get user")
	}

	existing, err := s.db.FindGrant(item.ID, subject, role)
	if err != nil && !s.db.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not get grant")
	}

	switch {
	case grant && existing == nil:
		err = s.db.Save(&model.Grant{
			ItemID:  item.ID,
			Subject: subject,
			Role:    role,
		})
	case !grant && existing != nil:
		if role == model.RoleOwner && len(acl.Subjects(model.RoleOwner)) == 1 {
			return nil, sferror.New(http.StatusBadRequest, "Can not revoke the last owner.")
		}
		err = s.db.Delete(existing)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not update access")
	}

	grants, err := s.db.FindGrants(item.ID)
	if err != nil {
		return nil, err
	}
	return serializer.Access(grants), nil
}

func (s *itemService) find(id string) (*model.Item, *ACL, error) {
	item, err := s.db.FindItem(id)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, nil, sferror.New(http.StatusNotFound, "Item not found.")
		}
		return nil, nil, errors.Wrap(err, "could not get item")
	}

	grants, err := s.db.FindGrants(item.ID)
	if err != nil {
		return nil, nil, err
	}

	return item, NewACL(grants), nil
}

func username(user *model.User) string {
	if user == nil {
		return ""
	}
	return user.Username
}

func forbidden(user *model.User) error {
	if user == nil {
		return sferror.New(http.StatusUnauthorized, "Session ID is required to access this item.")
	}
	return sferror.New(http.StatusForbidden, "You do not have access to this item.")
}
