package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eink-works/gxui/internal/app"
	"github.com/eink-works/gxui/internal/app/pages"
	"github.com/eink-works/gxui/internal/assets"
	"github.com/eink-works/gxui/internal/buttons"
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/theme"
	"github.com/eink-works/gxui/internal/ui"
	"github.com/eink-works/gxui/internal/widgets"
)

const version = "0.1.0"

func main() {
	fmt.Println("gxui starting")

	// Flags
	debug := flag.Bool("debug", false, "enable debug logging to ./gxui-debug.log")
	fbDevice := flag.String("fb", "/dev/fb0", "framebuffer device; empty for a headless noop surface")
	prefsPath := flag.String("prefs", "./gxui-prefs.json", "preferences file; empty disables persistence")
	noInput := flag.Bool("no-input", false, "disable the terminal button driver")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via GXUI_STDIO_LOG")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("GXUI_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./gxui-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *prefsPath != "" && !theme.Exists(*prefsPath) {
		logger.Infof("main", "no preferences at %q, first boot defaults apply", *prefsPath)
	}
	themes := theme.Load(*prefsPath)
	logger.Infof("main", "theme %s, prefs at %q", themes.Theme(), *prefsPath)

	// Surface: the framebuffer when available, a noop surface otherwise so the
	// navigation logic still runs headless.
	var surface render.Surface
	graphics := false
	if *fbDevice != "" {
		fbs, err := render.OpenFB(*fbDevice, themes)
		if err != nil {
			fmt.Println("framebuffer open error:", err)
		} else {
			fbs.Logger = logger
			defer fbs.Close()
			surface = fbs
			graphics = true
		}
	}
	if surface == nil {
		surface = render.NoopSurface{}
	}

	u := ui.New(surface, logger)

	home := pages.Home(u)
	settings := pages.Settings(u, themes)
	about := pages.About(version, "https://github.com/eink-works/gxui")

	menu := u.Menu()
	menu.AddToRoot(ui.NewPageLinkIcon("Home", assets.IconHome, home))
	menu.AddToRoot(ui.NewPageLinkIcon("Settings", assets.IconGear, settings))

	system := ui.NewSubmenu("System")
	system.AddItem(ui.NewPageLinkIcon("About", assets.IconInfo, about))
	system.AddItem(ui.NewActionIcon("Theme", assets.IconGear, func() {
		if err := themes.Toggle(); err != nil {
			logger.Errorf("main", "persist theme: %v", err)
		}
		// A theme flip invalidates every pixel, not just the overlay.
		u.Scheduler().Request(ui.RequestFull)
	}))
	menu.AddToRoot(system)

	var btns buttons.Buttons
	if *noInput {
		btns = buttons.NewNoopButtons()
	} else {
		btns = buttons.NewTTYButtons()
	}

	a := app.New(u, btns)
	a.Logger = logger
	a.GraphicsMode = graphics

	system.AddItem(ui.NewActionIcon("Exit", assets.IconPower, func() { a.Exit(nil) }))
	menu.Widgets = []ui.Drawable{widgets.NewLabel("menu-version", "v"+version)}

	u.PushPage(home)

	if err := a.Start(ctx); err != nil && err != context.Canceled {
		fmt.Println("app error:", err)
	}
	fmt.Println("gxui stopped")
}
