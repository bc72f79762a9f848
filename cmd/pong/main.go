// Command pong opens a window and plays a two player pong match.
// W/S move the left paddle and the arrow keys move the right one.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs/debugui"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/internal/config"
	"github.com/plus3/pong/pong"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	log.SetPrefix("[pong] ")

	input := newKeyboardInput()
	session, err := pong.NewSession(cfg.Match, pong.WithInput(input))
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	width := int(cfg.Match.ArenaWidth * cfg.Scale)
	height := int(cfg.Match.ArenaHeight * cfg.Scale)

	game := &Game{
		session: session,
		dt:      1 / float64(max(cfg.TPS, 1)),
		width:   width,
		height:  height,
	}
	if cfg.Debug {
		game.overlay = debugui_ebiten.NewOverlay("Pong", width, height, debugui.Target{
			Storage:   session.Storage(),
			Scheduler: session.Scheduler(),
		})
		input.captured = game.overlay.WantsKeyboard
	} else {
		ebiten.SetWindowTitle("Pong")
		ebiten.SetWindowSize(width, height)
	}
	ebiten.SetTPS(cfg.TPS)

	log.Printf("Starting session %s", session.ID)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run game: %v", err)
	}
}
