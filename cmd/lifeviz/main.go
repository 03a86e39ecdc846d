//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeviz/internal/app"
	"lifeviz/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		log.Fatal(err)
	}
	s, err := session.New(opts)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(s, cfg)

	ebiten.SetWindowTitle("lifeviz: Conway, styled")
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
