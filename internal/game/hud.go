package game

import (
	"fmt"
	"image/color"
	"math"
	"raycaster/internal/monitoring"
	"raycaster/internal/raycast"
	"raycaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	hudBackground = color.RGBA{0, 0, 0, 160}
	hudText       = color.RGBA{255, 255, 255, 255}
)

const (
	hudMargin  = 8
	hudPadding = 6
)

// hudState is everything the overlay shows, gathered once per frame.
type hudState struct {
	FPS, TPS float64
	Pose     raycast.Pose
	Stats    render.FrameStats
	Metrics  monitoring.FrameMetrics
	DrawRays bool
}

func hudLines(s hudState) []string {
	rays := "off"
	if s.DrawRays {
		rays = "on"
	}
	return []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", s.FPS, s.TPS),
		fmt.Sprintf("pos %.2f, %.2f  heading %.1f°", s.Pose.X, s.Pose.Y, s.Pose.Angle*180/math.Pi),
		fmt.Sprintf("rays %d  hits %d", s.Stats.Rays, s.Stats.Hits),
		fmt.Sprintf("frame %.2fms  cast %.2fms", ms(s.Metrics.FrameTime.Nanoseconds()), ms(s.Metrics.RaycastTime.Nanoseconds())),
		fmt.Sprintf("F1 HUD  F2 trace (%s)  Esc quit", rays),
	}
}

func ms(ns int64) float64 {
	return float64(ns) / 1e6
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := hudLines(hudState{
		FPS:      ebiten.ActualFPS(),
		TPS:      ebiten.ActualTPS(),
		Pose:     g.pose,
		Stats:    g.lastStats,
		Metrics:  g.monitor.GetCurrentMetrics(),
		DrawRays: g.compositor.Config().DrawRays,
	})

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}

	x := g.compositor.Config().ViewX + hudMargin
	y := hudMargin
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(width+2*hudPadding), float32(len(lines)*lineHeight+2*hudPadding), hudBackground, false)

	baseline := y + hudPadding + face.Ascent
	for _, l := range lines {
		ebitext.Draw(screen, l, face, x+hudPadding, baseline, hudText)
		baseline += lineHeight
	}
}
