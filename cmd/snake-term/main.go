package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"classicsnake/internal/config"
	"classicsnake/internal/game"
	"classicsnake/internal/termui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.toml (default: $SNAKE_CONFIG or user config dir)")
	logPath := flag.String("log", "", "write log output to this file (the terminal is taken by the game)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*cfgPath, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, logPath string, mute bool) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}

	path, err := config.Path(cfgPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	state, err := game.New(cfg.GameOptions())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	ui, err := termui.New(screen, state, cfg.Sound && !mute)
	if err != nil {
		return err
	}
	defer ui.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("session start: field %dx%d unit %d", cfg.FieldWidth, cfg.FieldHeight, cfg.UnitSize)
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("session end: score %d", state.Score())
	return nil
}
