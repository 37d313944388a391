// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command game runs the Polyverse game.
//
// Usage:
//
//	game [--config file] [--fullscreen] [--width w --height h] [--offscreen [--frames n]] [--platform os/arch] [-v|--vv|-q]
//
// Extra arguments can be given in the POLYVERSE_GAME_ARGS environment
// variable. A failure to start is shown in an alert and the command
// exits with status 1.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"polyverse.dev/game/app"
	"polyverse.dev/game/base/args"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/base/logx"
	"polyverse.dev/game/config"
	"polyverse.dev/game/display"
	"polyverse.dev/game/system"
	"polyverse.dev/game/system/driver/offscreen"
)

func main() {
	a, err := args.All()
	errors.Log(err)
	if err := newApp().Run(a); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:           "game",
		Usage:          "Run the Polyverse game",
		Flags:          flags(),
		Action:         run,
		ExitErrHandler: exitErrHandler,
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   config.DefaultPath,
			Usage:   "Configuration file",
		},
		&cli.BoolFlag{
			Name:    "fullscreen",
			Aliases: []string{"f"},
			Usage:   "Start in fullscreen mode",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "Window width",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Window height",
		},
		&cli.BoolFlag{
			Name:  "offscreen",
			Usage: "Run without a display",
		},
		&cli.IntFlag{
			Name:  "frames",
			Value: 60,
			Usage: "Number of frames to run offscreen before quitting",
		},
		&cli.StringFlag{
			Name:  "platform",
			Usage: "Check desktop support as if running on this os[/arch]",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "Reload the configuration file when it changes",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log informational messages",
		},
		&cli.BoolFlag{
			Name:    "very-verbose",
			Aliases: []string{"vv"},
			Usage:   "Log debug messages",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
	}
}

func run(c *cli.Context) error {
	logx.UserLevel = logx.LevelFromFlags(c.Bool("very-verbose"), c.Bool("verbose"), c.Bool("quiet"))
	logx.SetDefaultLogger()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	d, p, err := newDriver(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if od, ok := d.(*offscreen.Driver); ok {
		od.CloseAfter = c.Int("frames")
	}

	g := app.New(d, cfg, p)
	if !cfg.Offscreen {
		g.GeometryPath = display.DefaultGeometryPath
	}
	if c.Bool("watch") {
		g.Watcher = errors.Log1(config.Watch(c.String("config")))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := g.Run(ctx); err != nil {
		errors.Log(err)
		d.Alert(err.Error(), cfg.Title, system.Error)
		return cli.Exit("", 1)
	}
	return nil
}

// loadConfig returns the configuration file overridden by the flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	over := &config.Config{
		Fullscreen: c.Bool("fullscreen"),
		Width:      c.Int("width"),
		Height:     c.Int("height"),
		Offscreen:  c.Bool("offscreen"),
	}
	if err := config.Merge(cfg, over); err != nil {
		return nil, err
	}
	pf := config.Current()
	if s := c.String("platform"); s != "" {
		if err := pf.SetString(s); err != nil {
			return nil, fmt.Errorf("invalid options: %w", err)
		}
	}
	if err := pf.DesktopSupported(); err != nil && !cfg.Offscreen {
		slog.Warn("running offscreen", "reason", err)
		cfg.Offscreen = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// exitErrHandler prints the message of an exit error, if any, and exits
// with its code.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
