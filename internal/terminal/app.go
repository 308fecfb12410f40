package terminal

import (
	"context"
	"fmt"
	"math"
	"raycaster/internal/canvas"
	"raycaster/internal/control"
	"raycaster/internal/logging"
	"raycaster/internal/raycast"
	"raycaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

// App drives the compositor from terminal key events. It redraws only when
// something changed.
type App struct {
	screen     tcell.Screen
	compositor *render.Compositor
	presenter  *Presenter
	canvas     *canvas.Canvas
	speeds     control.Speeds
	pose       raycast.Pose
}

// NewApp prepares an app on an initialised screen.
func NewApp(screen tcell.Screen, compositor *render.Compositor, start raycast.Pose, speeds control.Speeds) *App {
	rc := compositor.Config()
	return &App{
		screen:     screen,
		compositor: compositor,
		presenter:  NewPresenter(screen, rc.ViewX),
		canvas:     canvas.New(rc.CanvasWidth, rc.CanvasHeight),
		speeds:     speeds,
		pose:       start.Normalized(),
	}
}

// Pose returns the current viewer pose.
func (a *App) Pose() raycast.Pose {
	return a.pose
}

// Run draws the first frame and then handles events until a quit key, the
// end of the event stream or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := a.handle(ev); quit {
				logging.Logger().Info("quit requested")
				return nil
			}
		}
	}
}

// handle applies one event and reports whether the app should stop.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		in, cmd := TranslateKey(ev)
		switch cmd {
		case CommandQuit:
			return true
		case CommandToggleRays:
			a.compositor.SetDrawRays(!a.compositor.Config().DrawRays)
		}
		if !in.Any() && cmd == CommandNone {
			return false
		}
		a.pose = control.Apply(a.pose, in, a.speeds)
	default:
		return false
	}
	a.draw()
	return false
}

func (a *App) draw() {
	stats := a.compositor.Render(a.canvas, a.pose)
	a.presenter.Present(a.canvas, statusLine(a.pose, stats))
}

func statusLine(p raycast.Pose, stats render.FrameStats) string {
	return fmt.Sprintf(" x %.2f y %.2f  %.0f°  hits %d/%d  wasd/arrows move  q/e turn  r trace  esc quit",
		p.X, p.Y, p.Angle*180/math.Pi, stats.Hits, stats.Rays)
}
