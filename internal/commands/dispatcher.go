package commands

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/rafabd1/ubiq/internal/opener"
	"github.com/rafabd1/ubiq/pkg/log"
)

// Dispatcher resolves command invocations against a Registry and hands the
// resulting URLs to an Opener.
type Dispatcher struct {
	registry *Registry
	opener   opener.Opener
	encode   bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOpener sets the capability used by Launch.
func WithOpener(o opener.Opener) Option {
	return func(d *Dispatcher) {
		d.opener = o
	}
}

// WithEncoding enables percent-encoding of arguments before templating.
// When disabled (the default) text is substituted verbatim.
func WithEncoding(enabled bool) Option {
	return func(d *Dispatcher) {
		d.encode = enabled
	}
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{registry: registry}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Resolve computes the destination URL for name. args holds the object text
// and, for two-argument commands, the source text. Arguments beyond the
// command's arity are ignored. Resolve has no side effects.
func (d *Dispatcher) Resolve(name string, args ...string) (string, error) {
	spec, ok := d.registry.Get(name)
	if !ok {
		return "", errors.Wrapf(ErrUnknownCommand, "%q", name)
	}

	if len(args) < spec.Arity {
		return "", errors.Wrapf(ErrMissingArgument, "%s requires %s", name, argumentName(len(args)))
	}
	values := make([]string, spec.Arity)
	for i := range values {
		if strings.TrimSpace(args[i]) == "" {
			return "", errors.Wrapf(ErrMissingArgument, "%s requires %s", name, argumentName(i))
		}
		values[i] = args[i]
		if d.encode {
			values[i] = escape(spec.Slot, args[i])
		}
	}

	return spec.Template(values), nil
}

// ResolveInvocation resolves a parsed input line.
func (d *Dispatcher) ResolveInvocation(inv Invocation) (string, error) {
	return d.Resolve(inv.Name, inv.Args()...)
}

// Launch resolves the invocation and passes the URL to the opener.
// The URL is returned even when opening fails so callers can show it.
func (d *Dispatcher) Launch(ctx context.Context, name string, args ...string) (string, error) {
	if d.opener == nil {
		return "", ErrNoOpener
	}
	u, err := d.Resolve(name, args...)
	if err != nil {
		return "", err
	}
	log.Debug("resolved command", "command", name, "url", u)
	if err := d.opener.Open(ctx, u); err != nil {
		log.Warn("opener failed", "command", name, "url", u, "error", err)
		return u, errors.Wrapf(err, "failed to open %s", u)
	}
	return u, nil
}

func escape(slot SlotKind, s string) string {
	if slot == SlotPath {
		return url.PathEscape(s)
	}
	return url.QueryEscape(s)
}

func argumentName(i int) string {
	if i == 0 {
		return "object text"
	}
	return "source text"
}
