package opener

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/shell"

	"github.com/rafabd1/ubiq/pkg/log"
)

// Browser opens URLs by running a browser command with the URL appended.
type Browser struct {
	// Command is the argv prefix, e.g. ["firefox", "--new-tab"].
	// Empty means DefaultCommand().
	Command []string
}

// NewBrowser builds a Browser from a command line such as
// `firefox --new-tab` or `"/opt/my browser/bin/browser"`. Quoting and
// $VARS follow shell rules. An empty line selects the default command.
func NewBrowser(commandLine string) (*Browser, error) {
	if commandLine == "" {
		return &Browser{}, nil
	}
	argv, err := shell.Fields(commandLine, os.Getenv)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid browser command %q", commandLine)
	}
	if len(argv) == 0 {
		return nil, errors.Errorf("invalid browser command %q", commandLine)
	}
	return &Browser{Command: argv}, nil
}

// DefaultCommand returns the command used when none is configured:
// $BROWSER if set, otherwise the platform's URL handler.
func DefaultCommand() []string {
	if b := os.Getenv("BROWSER"); b != "" {
		if argv, err := shell.Fields(b, os.Getenv); err == nil && len(argv) > 0 {
			return argv
		}
	}

	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open starts the browser command and returns once it is running. The
// process is not tied to ctx: a browser that stays in the foreground keeps
// running after the caller moves on. Its exit status is only logged.
func (b *Browser) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	argv := b.Command
	if len(argv) == 0 {
		argv = DefaultCommand()
	}
	args := append(append([]string{}, argv[1:]...), url)

	logger := log.With("browser", argv[0], "url", url)
	logger.Debugw("launching browser", "argv", argv)
	cmd := exec.Command(argv[0], args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", argv[0])
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Warnw("browser exited with error", "error", err)
		}
	}()
	return nil
}
