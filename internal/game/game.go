// Package game runs the ray caster inside an ebiten window.
package game

import (
	"context"
	"log/slog"
	"maps"
	"raycaster/internal/canvas"
	"raycaster/internal/control"
	"raycaster/internal/logging"
	"raycaster/internal/monitoring"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/scene"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// alertInterval is how many ticks pass between performance checks (3s at 60 TPS).
const alertInterval = 180

// Game implements ebiten.Game. It owns the viewer pose and the canvas the
// compositor draws into; the pixels are copied to the screen every frame.
type Game struct {
	compositor *render.Compositor
	canvas     *canvas.Canvas
	pose       raycast.Pose
	speeds     control.Speeds

	input   *InputHandler
	monitor *monitoring.PerformanceMonitor

	showHUD   bool
	lastStats render.FrameStats
	ticks     uint64
}

// NewGame creates a game for a loaded scene, starting from its configured pose.
func NewGame(s *scene.Scene) *Game {
	rc := s.Compositor.Config()
	monitor := monitoring.NewPerformanceMonitor()
	monitor.SetThresholds(s.Config.Performance.MinFPS, s.Config.Performance.MaxMemoryMB)
	return &Game{
		compositor: s.Compositor,
		canvas:     canvas.New(rc.CanvasWidth, rc.CanvasHeight),
		pose:       s.StartPose(),
		speeds:     s.Speeds(),
		input:      NewInputHandler(nil),
		monitor:    monitor,
		showHUD:    s.Config.Display.ShowHUD,
	}
}

// Pose returns the current viewer pose.
func (g *Game) Pose() raycast.Pose {
	return g.pose
}

// Update applies one tick of input. Escape ends the run loop.
func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitRequested() {
		logging.Logger().Info("quit requested")
		return ebiten.Termination
	}
	if g.input.HUDToggled() {
		g.showHUD = !g.showHUD
	}
	if g.input.RaysToggled() {
		g.compositor.SetDrawRays(!g.compositor.Config().DrawRays)
	}

	g.pose = control.Apply(g.pose, g.input.Intent(), g.speeds)

	g.ticks++
	if g.ticks%alertInterval == 0 {
		g.logAlerts()
	}
	return nil
}

// Draw renders the frame on the CPU canvas and uploads it.
func (g *Game) Draw(screen *ebiten.Image) {
	ft := g.monitor.StartFrame()
	g.renderFrame()
	screen.WritePixels(g.canvas.Pix())
	ft.EndFrame()

	if g.showHUD {
		g.drawHUD(screen)
	}
}

// renderFrame draws the current pose into the canvas and records timings.
func (g *Game) renderFrame() {
	rt := g.monitor.StartRaycast()
	g.lastStats = g.compositor.Render(g.canvas, g.pose)
	rt.EndRaycast(g.lastStats.Rays, g.lastStats.Hits)
}

// Layout keeps the logical screen at canvas size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.canvas.Width(), g.canvas.Height()
}

func (g *Game) logAlerts() {
	log := logging.Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		stats := g.monitor.GetDetailedStats()
		attrs := make([]any, 0, 2*len(stats))
		for _, k := range slices.Sorted(maps.Keys(stats)) {
			attrs = append(attrs, k, stats[k])
		}
		log.Debug("performance stats", attrs...)
	}
	for _, a := range g.monitor.CheckPerformanceAlerts() {
		log.Warn("performance alert",
			"type", a.Type, "value", a.Value, "threshold", a.Threshold)
	}
}
