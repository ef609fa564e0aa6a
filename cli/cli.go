package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"bl3-savior/config"
	"bl3-savior/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Config  string     `arg:"--config" help:"YAML config file (default: $BL3_SAVIOR_CONFIG)" placeholder:"FILE"`
		Verbose bool       `arg:"-v,--verbose" help:"log at debug level"`
		Edit    *EditCmd   `arg:"subcommand:edit" help:"edit a savegame and write it in one of several formats"`
		Info    *InfoCmd   `arg:"subcommand:info" help:"show what is inside a savegame"`
		Browse  *BrowseCmd `arg:"subcommand:browse" help:"browse the savegames of a directory"`
	}
	BrowseCmd struct {
		Dir string `arg:"positional" help:"directory to list (default: current directory)" placeholder:"DIR"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Mayhem has come to our command line.\n",
			"A CLI utility to inspect and edit Borderlands 3 character savegames:",
			"decrypt, re-encrypt, copy playthroughs around, and move items in and out.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// NewLogger builds the process logger from the log section of cfg. Verbose
// forces the debug level.
func NewLogger(cfg config.LogConfig, verbose bool, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if verbose {
		options.Level = slog.LevelDebug
	}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

// Run executes the chosen subcommand. Progress and reports go to stdout.
func Run(args Args, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	switch {
	case args.Edit != nil:
		return StartEditing(*args.Edit, cfg, logger, stdout)
	case args.Info != nil:
		return StartInfo(*args.Info, logger, stdout)
	case args.Browse != nil:
		return StartBrowsing(*args.Browse, cfg, logger)
	default:
		return StartBrowsing(BrowseCmd{}, cfg, logger)
	}
}

func StartBrowsing(cmd BrowseCmd, cfg *config.Config, logger *slog.Logger) error {
	dir := cmd.Dir
	if dir == "" {
		dir = "."
	}
	return ui.Start(dir, cfg.Browse.Extensions, logger)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	cfg, err := config.Load(args.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error happened loading config: "+err.Error())
		os.Exit(2)
	}
	logger := NewLogger(cfg.Log, args.Verbose, os.Stderr)

	if err := Run(args, cfg, logger, os.Stdout); err != nil {
		logger.Debug("command failed", "error", fmt.Sprintf("%+v", err))
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
