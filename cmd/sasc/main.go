package main

import (
	"fmt"
	"os"

	"github.com/mdouchement/simpleauthstore/internal/client"
	"github.com/mdouchement/simpleauthstore/pkg/libsas"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	endpoint string
	dump     bool
)

func main() {
	c := &cobra.Command{
		Use:     "sasc",
		Short:   "SimpleAuthStore client",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.NoArgs,
	}
	c.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", libsas.DefaultEndpoint, "SimpleAuthStore API endpoint")
	c.PersistentFlags().BoolVarP(&dump, "dump", "", false, "Dump results as Go values instead of JSON")

	c.AddCommand(signupCmd)
	c.AddCommand(loginCmd)
	c.AddCommand(logoutCmd)
	c.AddCommand(readUserCmd)
	c.AddCommand(writePublicCmd)
	c.AddCommand(writePrivateCmd)
	c.AddCommand(createItemCmd)
	c.AddCommand(ownedItemsCmd)
	c.AddCommand(readItemCmd)
	c.AddCommand(updateItemCmd)
	c.AddCommand(manageAccessCmd)

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(f func(r *client.Runner) error) error {
	r, err := client.Open(endpoint, client.Printer{W: os.Stdout, Dump: dump})
	if err != nil {
		return err
	}
	return f(r)
}

var (
	signupCmd = &cobra.Command{
		Use:   "signup",
		Short: "Create an account on the SimpleAuthStore server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Signup(endpoint)
		},
	}

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Login to the SimpleAuthStore server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Login(endpoint)
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Logout()
		},
	}

	readUserCmd = &cobra.Command{
		Use:   "read-user [USERNAME]",
		Short: "Read the data of a user (yourself by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var username string
			if len(args) > 0 {
				username = args[0]
			}
			return run(func(r *client.Runner) error {
				return r.ReadUser(username)
			})
		},
	}

	writePublicCmd = &cobra.Command{
		Use:   "write-public JSON",
		Short: "Replace your public data",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.WritePublic(args[0])
			})
		},
	}

	writePrivateCmd = &cobra.Command{
		Use:   "write-private JSON",
		Short: "Replace your private data",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.WritePrivate(args[0])
			})
		},
	}

	createItemCmd = &cobra.Command{
		Use:   "create-item DESCRIPTION",
		Short: "Create a shared item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.CreateItem(args[0])
			})
		},
	}

	ownedItemsCmd = &cobra.Command{
		Use:   "owned-items",
		Short: "List the shared items you own",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.OwnedItems()
			})
		},
	}

	readItemCmd = &cobra.Command{
		Use:   "read-item ID",
		Short: "Read a shared item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.ReadItem(args[0])
			})
		},
	}

	updateItemCmd = &cobra.Command{
		Use:   "update-item ID JSON",
		Short: "Replace the data of a shared item",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.UpdateItem(args[0], args[1])
			})
		},
	}

	manageAccessCmd = &cobra.Command{
		Use:   "manage-access ID SUBJECT ACTION",
		Short: "Grant or revoke access on a shared item (SUBJECT can be ANYONE)",
		Long: `Grant or revoke access on a shared item.

SUBJECT is a username or ANYONE.
ACTION is one of grant_reader, revoke_reader, grant_writer, revoke_writer, grant_owner, revoke_owner.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(r *client.Runner) error {
				return r.ManageAccess(args[1], args[0], args[2])
			})
		},
	}
)
