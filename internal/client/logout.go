package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// Logout forgets the stored session.
// Sessions are not revocable server side, they expire on their own.
func Logout() error {
	if !Exists() {
		fmt.Println("Not logged in")
		return nil
	}

	return errors.Wrap(Remove(), "could not remove credential file")
}
