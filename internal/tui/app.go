package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/motion/internal/dispatcher"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/logging"
)

// App is an interactive session over one in-memory document.
type App struct {
	screen     tcell.Screen
	host       *host.Memory
	dispatcher *dispatcher.Dispatcher
	logger     *logging.Logger

	keymap Keymap
	view   View
	status string
}

// New creates an application. The screen must not be initialized yet; Run
// initializes and finalizes it.
func New(screen tcell.Screen, h *host.Memory, d *dispatcher.Dispatcher, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		screen:     screen,
		host:       h,
		dispatcher: d,
		logger:     logger.WithComponent("tui"),
		view:       View{TabWidth: DefaultTabWidth},
	}
}

// Status returns the status line text.
func (a *App) Status() string {
	mode := "move"
	if a.keymap.Visual() {
		mode = "select"
	}
	s := fmt.Sprintf("%s | %d selections | v%d", mode, len(a.host.Selections()), a.host.Version())
	if p := a.keymap.Pending(); p != "" {
		s += " | " + p
	}
	if a.status != "" {
		s += " | " + a.status
	}
	return s
}

// Run draws and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return ctx.Err()
		}
		if a.HandleEvent(ctx, ev) {
			return nil
		}
	}
}

// Draw renders the current state.
func (a *App) Draw() {
	a.view.Draw(a.screen, a.host, a.Status())
	a.screen.Show()
}

// HandleEvent applies one event and reports whether the session should end.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return false
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	}
	return false
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	out := a.keymap.Feed(ev)

	switch {
	case out.Quit:
		return true
	case out.Collapse:
		a.collapse()
	case out.AddCursor:
		a.addCursor()
	case out.Request != nil:
		res := a.dispatcher.Execute(ctx, a.host, *out.Request)
		a.status = res.String()
		if res.IsError() {
			a.logger.Warn("%s: %v", out.Request, res.Error)
		}
	}
	return false
}

func (a *App) collapse() {
	sels := a.host.Selections()
	if len(sels) == 0 {
		return
	}
	a.host.SetSelections([]text.Selection{text.NewCursor(sels[0].Active)})
	a.status = ""
}

func (a *App) addCursor() {
	sels := a.host.Selections()
	if len(sels) == 0 {
		return
	}
	last := sels[len(sels)-1].Active
	if last.Line+1 >= a.host.LineCount() {
		a.status = "no line below"
		return
	}
	p := text.ValidatePosition(a.host, text.Pos(last.Line+1, last.Character))
	a.host.SetSelections(append(sels, text.NewCursor(p)))
	a.status = ""
}
