// Package opener hands resolved URLs to whatever shows them to the user.
package opener

import (
	"context"
	"fmt"
	"io"
)

// Opener opens a URL, usually in a web browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Func adapts an ordinary function to the Opener interface.
type Func func(ctx context.Context, url string) error

// Open calls f(ctx, url).
func (f Func) Open(ctx context.Context, url string) error {
	return f(ctx, url)
}

// Printer writes URLs instead of opening them. Used for dry runs.
type Printer struct {
	W io.Writer
}

// Open writes "open <url>" followed by a newline.
func (p Printer) Open(ctx context.Context, url string) error {
	_, err := fmt.Fprintf(p.W, "open %s\n", url)
	return err
}
