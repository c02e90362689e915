//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/raypp2/LED-Ear-Wings/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	layout, wiring, err := cfg.Layout()
	if err != nil {
		log.Fatalf("loading layout: %v", err)
	}

	game := app.New(layout, wiring, cfg.Scale, cfg.Labels)

	ebiten.SetWindowTitle("xyview — " + layout.String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(layout.Width())*cfg.Scale, int(layout.Height())*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
