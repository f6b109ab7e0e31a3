//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifelike/internal/app"
	_ "lifelike/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	board, err := cfg.NewBoard(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	session := app.NewSession(board, cfg.PresetDir)
	scale := board.CellSize()
	game := app.New(session, scale, cfg.HUDWidth)
	size := board.Size()

	ebiten.SetWindowTitle("lifelike - " + board.Name() + " " + board.Rules().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*scale+cfg.HUDWidth, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
