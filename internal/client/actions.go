package client

import (
	"encoding/json"
	"strings"

	"github.com/mdouchement/simpleauthstore/pkg/libsas"
	"github.com/pkg/errors"
)

// A Runner performs the data commands on behalf of the logged user.
type Runner struct {
	Client  libsas.Client
	Config  Config
	Printer Printer
}

// Open loads the credentials and returns a Runner connected to their endpoint.
// Without credential file, the Runner is anonymous and uses the given endpoint.
func Open(endpoint string, printer Printer) (*Runner, error) {
	cfg := Config{Endpoint: endpoint}

	if Exists() {
		var err error
		cfg, err = Load()
		if err != nil {
			return nil, errors.Wrap(err, "could not load config")
		}
	}

	client, err := libsas.NewDefaultClient(cfg.Endpoint, libsas.WithLogger(NewLogger(LogFilename)))
	if err != nil {
		return nil, errors.Wrap(err, "could not reach SimpleAuthStore endpoint")
	}

	return &Runner{
		Client:  client,
		Config:  cfg,
		Printer: printer,
	}, nil
}

func (r *Runner) authenticated() error {
	if !r.Config.Authenticated() {
		return errors.New("not logged in, run login or signup first")
	}
	return nil
}

// ReadUser prints the USER item of the given username (the logged user when empty).
func (r *Runner) ReadUser(username string) error {
	if err := r.authenticated(); err != nil {
		return err
	}
	if username == "" {
		username = r.Config.Username
	}

	item, err := r.Client.ReadUser(username, r.Config.SessionID)
	if err != nil {
		return errors.Wrap(err, "could not read user")
	}
	return r.printItem(item)
}

// WritePublic replaces the public data of the logged user.
func (r *Runner) WritePublic(data string) error {
	if err := r.authenticated(); err != nil {
		return err
	}

	item, err := r.Client.WriteUserPublic(r.Config.SessionID, r.Config.Username, data)
	if err != nil {
		return errors.Wrap(err, "could not write public data")
	}
	return r.printItem(item)
}

// WritePrivate replaces the private data of the logged user.
func (r *Runner) WritePrivate(data string) error {
	if err := r.authenticated(); err != nil {
		return err
	}

	item, err := r.Client.WriteUserPrivate(r.Config.SessionID, r.Config.Username, data)
	if err != nil {
		return errors.Wrap(err, "could not write private data")
	}
	return r.printItem(item)
}

// CreateItem creates a shared item owned by the logged user.
func (r *Runner) CreateItem(description string) error {
	if err := r.authenticated(); err != nil {
		return err
	}

	item, err := r.Client.CreateSharedItem(r.Config.SessionID, description)
	if err != nil {
		return errors.Wrap(err, "could not create shared item")
	}
	return r.printItem(item)
}

// OwnedItems prints the shared items owned by the logged user.
func (r *Runner) OwnedItems() error {
	if err := r.authenticated(); err != nil {
		return err
	}

	items, err := r.Client.ReadOwnedItems(r.Config.SessionID)
	if err != nil {
		return errors.Wrap(err, "could not read owned items")
	}

	if r.Printer.Dump {
		return r.Printer.Print(items)
	}

	raws := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raws = append(raws, raw(item))
	}
	return r.Printer.Print(raws)
}

// ReadItem prints the shared item of the given id.
// Anonymous runners can only read items shared with ANYONE.
func (r *Runner) ReadItem(id string) error {
	item, err := r.Client.ReadSharedItem(r.Config.SessionID, id)
	if err != nil {
		return errors.Wrap(err, "could not read shared item")
	}
	return r.printItem(item)
}

// UpdateItem replaces the shared data of the given item.
func (r *Runner) UpdateItem(id, data string) error {
	if err := r.authenticated(); err != nil {
		return err
	}

	item, err := r.Client.UpdateSharedItem(r.Config.SessionID, id, data)
	if err != nil {
		return errors.Wrap(err, "could not update shared item")
	}
	return r.printItem(item)
}

// ManageAccess applies the action for the subject on the given item.
// The action is case insensitive (e.g. grant_reader).
func (r *Runner) ManageAccess(subject, id, action string) error {
	if err := r.authenticated(); err != nil {
		return err
	}

	payload, err := r.Client.ManageAccess(r.Config.SessionID, subject, id, libsas.Action(strings.ToUpper(action)))
	if err != nil {
		return errors.Wrap(err, "could not manage access")
	}

	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return r.Printer.Print(payload)
}

func (r *Runner) printItem(item libsas.Item) error {
	if r.Printer.Dump {
		return r.Printer.Print(item)
	}
	return r.Printer.Print(raw(item))
}

// raw returns the item as sent by the server.
func raw(item libsas.Item) json.RawMessage {
	if len(item.Raw) > 0 {
		return item.Raw
	}

	payload, _ := json.Marshal(item)
	return payload
}
