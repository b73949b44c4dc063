package commands

import "github.com/pkg/errors"

var (
	// ErrUnknownCommand is returned when a command name is not registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a required text argument is absent or blank.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidSpec is returned when a registry is built from a malformed spec list.
	ErrInvalidSpec = errors.New("invalid command spec")
	// ErrEmptyInput is returned by Registry.ParseLine for a blank line.
	ErrEmptyInput = errors.New("empty input")
	// ErrNoOpener is returned by Launch when the dispatcher has no opener.
	ErrNoOpener = errors.New("no opener configured")
)
