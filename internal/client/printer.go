package client

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
)

// A Printer writes command results.
type Printer struct {
	W    io.Writer
	Dump bool // Go syntax dump instead of JSON
}

// Print writes v as indented JSON, or as a Go value when Dump is set.
func (p Printer) Print(v any) error {
	if p.Dump {
		_, err := fmt.Fprintln(p.W, litter.Sdump(v))
		return errors.Wrap(err, "could not print result")
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize result")
	}

	_, err = fmt.Fprintln(p.W, string(payload))
	return errors.Wrap(err, "could not print result")
}
