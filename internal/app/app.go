// Package app wires the input driver, the UI context and the display surface
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eink-works/gxui/internal/buttons"
	"github.com/eink-works/gxui/internal/system"
	"github.com/eink-works/gxui/internal/ui"
)

type App struct {
	UI      *ui.UI
	Buttons buttons.Buttons
	Logger  Logger

	// GraphicsMode switches the console to KD_GRAPHICS while running; leave
	// it off when the surface is not the local framebuffer.
	GraphicsMode bool

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(u *ui.UI, buttonDriver buttons.Buttons) *App {
	return &App{UI: u, Buttons: buttonDriver, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running. Safe to call from any goroutine;
// only the first call wins.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs the rendering consumer and the input loop until ctx is done or
// Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.GraphicsMode {
		if err := system.SetGraphicsModeWithLog(app.Logger); err != nil {
			app.Logger.Errorf("app", "set graphics mode failed: %v", err)
		}
		_ = system.HideCursorWithLog(app.Logger)
		defer func() {
			_ = system.ShowCursorWithLog(app.Logger)
			_ = system.RestoreTextModeWithLog(app.Logger)
		}()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.UI.Run(loopCtx)
	}()

	if app.Buttons != nil {
		if err := app.Buttons.Start(loopCtx); err != nil {
			app.Logger.Errorf("app", "button driver start failed: %v", err)
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				app.inputLoop(loopCtx)
			}()
			defer app.Buttons.Stop()
		}
	}

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	return err
}

// inputLoop translates driver events into UI dispatches.
func (app *App) inputLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-app.Buttons.Events():
			if !ok {
				return
			}
			switch ev {
			case buttons.Up:
				app.UI.Dispatch(ui.EventUp)
			case buttons.Down:
				app.UI.Dispatch(ui.EventDown)
			case buttons.Left:
				app.UI.Dispatch(ui.EventLeft)
			case buttons.Right:
				app.UI.Dispatch(ui.EventRight)
			case buttons.Select:
				app.UI.Dispatch(ui.EventSelect)
			case buttons.Menu:
				if app.UI.MenuActive() {
					app.UI.Menu().Close()
				} else {
					app.UI.Menu().Open()
				}
			case buttons.Exit:
				app.Exit(nil)
			default:
				app.Logger.Errorf("app", "unhandled button event %q", ev)
			}
		}
	}
}

// Logger interface and implementations

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
