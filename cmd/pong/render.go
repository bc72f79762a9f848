package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pong/pong"
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	netColor        = color.RGBA{R: 0x40, G: 0x40, B: 0x50, A: 0xff}
	leftColor       = color.RGBA{R: 0x5b, G: 0xc0, B: 0xeb, A: 0xff}
	rightColor      = color.RGBA{R: 0xfd, G: 0xe7, B: 0x4c, A: 0xff}
	ballColor       = color.White
)

// projection maps world coordinates inside a Camera onto a screen of the given
// pixel size. World y points up, screen y points down.
type projection struct {
	camera        pong.Camera
	width, height float64
}

func (p projection) point(x, y float64) (float32, float32) {
	sx := (x - p.camera.Left) / (p.camera.Right - p.camera.Left) * p.width
	sy := (p.camera.Top - y) / (p.camera.Top - p.camera.Bottom) * p.height
	return float32(sx), float32(sy)
}

func (p projection) length(l float64) float32 {
	return float32(l / (p.camera.Right - p.camera.Left) * p.width)
}

// rect converts a box centred on (x, y) into a screen rectangle anchored at its top-left corner.
func (p projection) rect(x, y, w, h float64) (sx, sy, sw, sh float32) {
	sx, sy = p.point(x-w/2, y+h/2)
	return sx, sy, p.length(w), float32(h / (p.camera.Top - p.camera.Bottom) * p.height)
}

func drawSession(screen *ebiten.Image, session *pong.Session) {
	bounds := screen.Bounds()
	proj := projection{
		camera: *session.Camera(),
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
	}

	screen.Fill(backgroundColor)

	arena := session.Config().Arena()
	netX, netTop := proj.point(arena.Width/2, arena.Height)
	_, netBottom := proj.point(arena.Width/2, 0)
	vector.StrokeLine(screen, netX, netTop, netX, netBottom, 1, netColor, false)

	for _, side := range []pong.Side{pong.Left, pong.Right} {
		p := session.Paddle(side)
		x, y, w, h := proj.rect(p.Transform.X, p.Transform.Y, p.Paddle.Width, p.Paddle.Height)
		clr := leftColor
		if side == pong.Right {
			clr = rightColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	ball := session.Ball()
	cx, cy := proj.point(ball.Transform.X, ball.Transform.Y)
	vector.DrawFilledCircle(screen, cx, cy, proj.length(ball.Ball.Radius), ballColor, true)

	score := session.Score()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Player 1: %d   Player 2: %d", score.Left, score.Right))
}
