package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rafabd1/ubiq/internal/commands"
	"github.com/rafabd1/ubiq/internal/config"
	"github.com/rafabd1/ubiq/internal/opener"
	"github.com/rafabd1/ubiq/pkg/log"
	"github.com/rafabd1/ubiq/pkg/search/providers"
)

// app carries the flag values and the components built from them.
type app struct {
	configPath string
	logLevel   string
	browser    string
	encode     bool
	dryRun     bool

	cfg        *config.Config
	registry   *commands.Registry
	dispatcher *commands.Dispatcher
	searcher   *providers.CommandProvider
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ubiq",
		Short: "Open documentation, bug tracker and cross reference pages from short text commands",
		Long: `ubiq turns short commands such as "qtbug 12345" or
"qdoc QString::split from 5.2" into URLs and opens them in a browser.

Run without arguments to start the interactive prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cmd.OutOrStdout())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to config file (default ./ubiq.yaml or ~/.ubiq/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.browser, "browser", "", "Browser command line (default $BROWSER or the system URL handler)")
	flags.BoolVar(&a.encode, "encode", false, "Percent-encode text before substituting it into URLs")
	flags.BoolVar(&a.dryRun, "dry-run", false, "Print URLs instead of opening them")

	rootCmd.AddCommand(
		newOpenCmd(a),
		newResolveCmd(a),
		newListCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and wires the dispatcher. Flags override the file.
func (a *app) setup(cmd *cobra.Command, out io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	log.Init(log.Config{Level: log.ParseLevel(level)})
	if cfg.Source != "" {
		log.Info("configuration loaded", "path", cfg.Source)
	}

	encode := cfg.URLs.Encode
	if cmd.Flags().Changed("encode") {
		encode = a.encode
	}

	var o opener.Opener
	if a.dryRun {
		o = opener.Printer{W: out}
	} else {
		commandLine := cfg.Browser.Command
		if a.browser != "" {
			commandLine = a.browser
		}
		b, err := opener.NewBrowser(commandLine)
		if err != nil {
			return err
		}
		o = b
	}

	a.registry = commands.NewBuiltinRegistry()
	a.dispatcher = commands.NewDispatcher(a.registry, commands.WithOpener(o), commands.WithEncoding(encode))
	a.searcher = providers.NewCommandProvider(a.registry)
	return nil
}

// explain adds a "did you mean" hint to unknown command errors.
func (a *app) explain(ctx context.Context, name string, err error) error {
	if !errors.Is(err, commands.ErrUnknownCommand) {
		return err
	}
	if s := a.searcher.Suggest(ctx, name); s != "" {
		return errors.Errorf("%v (did you mean %s?)", err, s)
	}
	return err
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ubiq:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
