package main

import (
	"flag"
	"log"

	"classicsnake/internal/config"
	"classicsnake/internal/ebitenui"
	"classicsnake/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.toml (default: $SNAKE_CONFIG or user config dir)")
	writeCfg := flag.Bool("write-config", false, "write the effective config to the config path and exit")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	path, err := config.Path(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	if *writeCfg {
		if err := config.Save(path, cfg); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
		return
	}

	state, err := game.New(cfg.GameOptions())
	if err != nil {
		log.Fatal(err)
	}
	g := ebitenui.New(state, cfg.Sound && !*mute)

	ebiten.SetWindowSize(ebitenui.WindowWidth, ebitenui.WindowHeight)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
