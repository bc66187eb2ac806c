package client

import (
	"github.com/chzyer/readline"
	"github.com/mdouchement/simpleauthstore/pkg/libsas"
	"github.com/pkg/errors"
)

// Login connects to a SimpleAuthStore server and stores the session.
func Login(endpoint string) error {
	return authenticate(endpoint, func(c libsas.Client, username, password string) (libsas.Session, error) {
		session, err := c.Login(username, password)
		return session, errors.Wrap(err, "could not login")
	})
}

// Signup creates an account on a SimpleAuthStore server and stores the session.
func Signup(endpoint string) error {
	return authenticate(endpoint, func(c libsas.Client, username, password string) (libsas.Session, error) {
		session, err := c.Signup(username, password)
		return session, errors.Wrap(err, "could not signup")
	})
}

type authenticator func(c libsas.Client, username, password string) (libsas.Session, error)

func authenticate(endpoint string, auth authenticator) error {
	client, err := libsas.NewDefaultClient(endpoint, libsas.WithLogger(NewLogger(LogFilename)))
	if err != nil {
		return errors.Wrap(err, "could not reach given endpoint")
	}

	username, err := readline.Line("Username: ")
	if err != nil {
		return errors.Wrap(err, "could not read username from stdin")
	}

	password, err := readline.Password("Password: ")
	if err != nil {
		return errors.Wrap(err, "could not read password from stdin")
	}

	cfg, err := connect(client, username, string(password), auth)
	if err != nil {
		return err
	}

	return Save(cfg)
}

func connect(client libsas.Client, username, password string, auth authenticator) (Config, error) {
	session, err := auth(client, username, password)
	if err != nil {
		return Config{}, err
	}
	if session.SessionID == "" {
		return Config{}, errors.New("server returned no session ID")
	}

	return Config{
		Endpoint:  client.Endpoint(),
		Username:  username,
		SessionID: session.SessionID,
	}, nil
}
