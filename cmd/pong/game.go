package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/pong"
)

// Game adapts a pong.Session to ebiten.Game.
type Game struct {
	session *pong.Session
	overlay *debugui_ebiten.Overlay
	dt      float64
	width   int
	height  int
}

func (g *Game) Update() error {
	g.session.Step(g.dt)
	if g.overlay != nil {
		g.overlay.Update(g.dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSession(screen, g.session)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		// the overlay needs the real window size to place its windows
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}
