package service

import (
	"net/http"

	argon2 "github.com/mdouchement/simple-argon2"
	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/mdouchement/simpleauthstore/internal/server/serializer"
	"github.com/mdouchement/simpleauthstore/internal/server/session"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
	"github.com/pkg/errors"
)

type (
	// A UserService handles authentication and USER items.
	UserService interface {
		Signup(params AuthParams) (Render, error)
		Login(params AuthParams) (Render, error)
		Read(current *model.User, username string) (Render, error)
		Update(current *model.User, params UpdateParams) (Render, error)
	}

	// AuthParams are used to signup or login a user.
	AuthParams struct {
		Params
		Username string `json:"username"`
		Password string `json:"password"`
	}

	userService struct {
		db       database.Client
		sessions session.Manager
	}
)

// NewUser returns a new UserService.
func NewUser(db database.Client, sessions session.Manager) UserService {
	return &userService{
		db:       db,
		sessions: sessions,
	}
}

func (s *userService) Signup(params AuthParams) (Render, error) {
	// Check if the username is free to use.
	u, err := s.db.FindUserByUsername(params.Username)
	if err != nil && !s.db.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not get access to database")
	}
	if u != nil {
		return nil, sferror.New(http.StatusConflict, "This username is already registered.")
	}

	user := &model.User{
		Username:    params.Username,
		PublicData:  map[string]any{},
		PrivateData: map[string]any{},
	}

	// Crypt password
	user.Password, err = argon2.GenerateFromPasswordString(params.Password, argon2.Default)
	if err != nil {
		return nil, errors.Wrap(err, "could not store user password safe")
	}

	// Persist the model
	if err := s.db.Save(user); err != nil {
		if s.db.IsAlreadyExists(err) {
			return nil, sferror.New(http.StatusConflict, "This username is already registered.")
		}
		return nil, errors.Wrap(err, "could not persist user")
	}

	return s.session(user, params.Params)
}

func (s *userService) Login(params AuthParams) (Render, error) {
	// Retrieve user
	user, err := s.db.FindUserByUsername(params.Username)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, sferror.New(http.StatusUnauthorized, "Invalid username or password.")
		}
		return nil, errors.Wrap(err, "could not get user")
	}

	// Verify password
	if err = argon2.CompareHashAndPasswordString(user.Password, params.Password); err != nil {
		if err == argon2.ErrMismatchedHashAndPassword {
			return nil, sferror.New(http.StatusUnauthorized, "Invalid username or password.")
		}
		return nil, errors.Wrap(err, "could not validate password")
	}

	return s.session(user, params.Params)
}

func (s *userService) session(user *model.User, params Params) (Render, error) {
	session, err := s.sessions.Create(user, params.UserAgent)
	if err != nil {
		return nil, err
	}
	return serializer.Session(session), nil
}

func (s *userService) Read(current *model.User, username string) (Render, error) {
	user, err := s.db.FindUserByUsername(username)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, sferror.New(http.StatusNotFound, "User not found.")
		}
		return nil, errors.Wrap(err, "could not get user")
	}

	return serializer.User(user, current.ID == user.ID), nil
}

func (s *userService) Update(current *model.User, params UpdateParams) (Render, error) {
	if params.ItemSortKey != current.Username {
		return nil, sferror.New(http.StatusForbidden, "You can only update your own user data.")
	}

	public := present(params.Item.PublicData)
	private := present(params.Item.PrivateData)
	if !public && !private {
		return nil, sferror.New(http.StatusBadRequest, "No data provided.")
	}

	var err error
	if public {
		if current.PublicData, err = object(params.Item.PublicData); err != nil {
			return nil, err
		}
	}
	if private {
		if current.PrivateData, err = object(params.Item.PrivateData); err != nil {
			return nil, err
		}
	}

	if err = s.db.Save(current); err != nil {
		return nil, errors.Wrap(err, "could not persist user")
	}

	return serializer.User(current, true), nil
}
