//go:build js && wasm

// cmd/cheez-wasm/main.go
//
// Browser client. Build with
//
//	GOOS=js GOARCH=wasm go build -o web/cheez.wasm ./cmd/cheez-wasm
//
// and serve the output directory with `cheez serve` (STATIC_DIR), next to
// wasm_exec.js from the Go distribution. Guesses go to /guess on the origin
// that served the page.

package main

import (
	"context"
	"os"
	"syscall/js"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cheez/internal/checker"
	"github.com/robalobadob/cheez/internal/dom"
	"github.com/robalobadob/cheez/internal/game"
	"github.com/robalobadob/cheez/internal/idgen"
)

func main() {
	// stdout is the browser console.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).With().Timestamp().Logger()

	surface, err := dom.Bind(js.Global().Get("document"))
	if err != nil {
		log.Fatal().Err(err).Msg("bind page")
	}

	session := surface.SessionID()
	if session == "" {
		if session, err = idgen.Session(); err != nil {
			log.Fatal().Err(err).Msg("session id")
		}
		surface.SetSessionID(session)
	}
	origin := js.Global().Get("location").Get("origin").String()

	effect := dom.NewEffect(surface)
	defer effect.Release()

	loop := game.NewLoop(64)
	g, err := game.New(game.Options{
		Surface:     surface,
		Checker:     checker.NewRemote(origin+"/guess", session),
		Dispatch:    loop.Dispatch(),
		MaxAttempts: surface.Rows(),
		Effect:      effect,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("new game")
	}
	defer g.Close()

	release := surface.Listen(loop.Post, g)
	defer release()

	log.Info().Str("session", session).Int("rows", surface.Rows()).Msg("cheez ready")
	loop.Post(g.Start)
	_ = loop.Run(context.Background())
}
