package opener

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc(t *testing.T) {
	var got string
	o := Func(func(ctx context.Context, url string) error {
		got = url
		return nil
	})
	require.NoError(t, o.Open(context.Background(), "http://example.org"))
	assert.Equal(t, "http://example.org", got)
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Printer{W: &buf}.Open(context.Background(), "http://example.org/a b"))
	assert.Equal(t, "open http://example.org/a b\n", buf.String())
}

func TestNewBrowser(t *testing.T) {
	t.Setenv("UBIQ_TEST_PROFILE", "work")

	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"firefox", []string{"firefox"}},
		{"firefox --new-tab", []string{"firefox", "--new-tab"}},
		{`"/opt/my browser/bin/browser" -P $UBIQ_TEST_PROFILE`, []string{"/opt/my browser/bin/browser", "-P", "work"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			b, err := NewBrowser(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Command)
		})
	}
}

func TestNewBrowserInvalid(t *testing.T) {
	_, err := NewBrowser(`firefox "unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid browser command")
}

func TestDefaultCommand(t *testing.T) {
	t.Setenv("BROWSER", "w3m -N")
	assert.Equal(t, []string{"w3m", "-N"}, DefaultCommand())

	t.Setenv("BROWSER", "")
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, []string{"open"}, DefaultCommand())
	case "windows":
		assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler"}, DefaultCommand())
	default:
		assert.Equal(t, []string{"xdg-open"}, DefaultCommand())
	}
}

func TestBrowserOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the browser")
	}

	dir := t.TempDir()
	record := filepath.Join(dir, "opened")
	script := filepath.Join(dir, "browser.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\" > \""+record+".tmp\"\nmv \""+record+".tmp\" \""+record+"\"\n"), 0o755))

	b := &Browser{Command: []string{script, "--new-tab"}}
	require.NoError(t, b.Open(context.Background(), "http://example.org/?q=1"))

	var data []byte
	require.Eventually(t, func() bool {
		var err error
		data, err = os.ReadFile(record)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "--new-tab http://example.org/?q=1\n", string(data))
}

func TestBrowserOpenDoesNotWaitForExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the browser")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "foreground.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nsleep 3\n"), 0o755))

	start := time.Now()
	require.NoError(t, (&Browser{Command: []string{script}}).Open(context.Background(), "http://example.org"))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestBrowserOpenFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-browser")

	err := (&Browser{Command: []string{missing}}).Open(context.Background(), "http://example.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
	assert.Contains(t, err.Error(), "no-such-browser")
}

func TestBrowserOpenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (&Browser{Command: []string{"true"}}).Open(ctx, "http://example.org")
	assert.ErrorIs(t, err, context.Canceled)
}
