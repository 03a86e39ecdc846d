package main

import (
	"flag"
	"log"
	"os"

	"lifeviz/internal/app"
	"lifeviz/internal/session"
	"lifeviz/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 96, 48
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

	ui, err := term.New(s)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}
