package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/taskboard/internal/app"
	"github.com/idilsaglam/taskboard/internal/cli"
	"github.com/idilsaglam/taskboard/internal/config"
	"github.com/idilsaglam/taskboard/internal/logging"
	"github.com/idilsaglam/taskboard/internal/store/jsonstore"
	"github.com/idilsaglam/taskboard/internal/store/slot"
	"github.com/idilsaglam/taskboard/internal/tui"
	"github.com/idilsaglam/taskboard/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "getwd:", err)
		return 1
	}

	// Root flags apply to the board and every subcommand.
	fs := flag.NewFlagSet("taskboard", flag.ContinueOnError)
	cfg, err := config.Load(fs, args, wd)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Prefix: "taskboard",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		return 1
	}
	defer closeLog.Close()

	s, err := slot.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		logger.Error("open storage", "storage", cfg.Storage, "dir", cfg.DataDir, "err", err)
		fmt.Fprintln(os.Stderr, "storage:", err)
		return 1
	}
	defer s.Close()

	a := app.New(jsonstore.New(s, cfg.SlotKey, logger), app.Options{
		Logger:      logger,
		DeleteDelay: cfg.DeleteDelay,
	})
	a.Boot()

	loc := ui.LocaleFromEnv()
	if cfg.Locale != "" {
		loc = ui.ParseLocale(cfg.Locale)
	}
	theme := ui.ThemeByName(cfg.Theme)
	r := ui.NewRenderer(theme, loc)

	if fs.NArg() > 0 {
		return cli.Run(fs.Args(), cli.Env{
			App:      a,
			Renderer: r,
			Out:      ui.NewOutput(os.Stdout, theme, false, cfg.NoColor),
			Err:      ui.NewOutput(os.Stderr, theme, false, cfg.NoColor),
		})
	}

	if err := tui.Run(a, r); err != nil {
		logger.Error("board", "err", err)
		fmt.Fprintln(os.Stderr, "board:", err)
		return 1
	}
	return 0
}
