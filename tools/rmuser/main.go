package main

import (
	"fmt"
	"log"

	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	c := &cobra.Command{
		Use:   "rmuser DATABASE USERNAME",
		Short: "Remove a user, its sessions and its grants from the database",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Println("Opening", args[0])
			db, err := database.StormOpen(args[0])
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			user, err := db.FindUserByUsername(args[1])
			if err != nil {
				if db.IsNotFound(err) {
					fmt.Println("No account for this username")
					return nil
				}
				return err
			}

			fmt.Println("User found:", user.ID)

			if err = db.DeleteUser(user); err != nil {
				return errors.Wrap(err, "delete user")
			}
			fmt.Println("User removed")

			return nil
		},
	}

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
