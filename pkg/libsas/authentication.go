package libsas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	endpointSignup = "auth/signup"
	endpointLogin  = "auth/login"
)

func (c *client) Signup(username, password string) (Session, error) {
	return c.authenticate(endpointSignup, username, password, "Username and password are required for signup")
}

func (c *client) Login(username, password string) (Session, error) {
	return c.authenticate(endpointLogin, username, password, "Username and password are required for login")
}

func (c *client) authenticate(endpoint, username, password, message string) (Session, error) {
	var session Session

	if err := required(message, username, password); err != nil {
		return session, err
	}

	err := c.request(endpoint, p{"username": username, "password": password}, &session)
	return session, err
}

// required checks in order that all the given values are present.
// The first missing one fails with the given message.
func required(message string, values ...string) error {
	rule := validation.Required.Error(message)
	for _, v := range values {
		if err := validation.Validate(v, rule); err != nil {
			return validationError(err.Error())
		}
	}
	return nil
}
