package app

import (
	"runtime"
	"time"

	"types-editor/internal/config"
	"types-editor/internal/gui"
	"types-editor/internal/loader"
	"types-editor/internal/logger"
	"types-editor/internal/shutdown"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.dayz.typeseditor"
	AppVersion = "1.0.0"

	component       = "Application"
	shutdownTimeout = 5 * time.Second
)

type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	view     *gui.View
	session  *Session
	loader   *loader.Loader
	handlers *Handlers
	shutdown *shutdown.Manager
	logger   logger.Logger
	config   config.Config
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(gui.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info(component, "starting application", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"types_path":    cfg.TypesPath,
		"log_level":     cfg.LogLevel.String(),
		"dotenv":        cfg.DotEnvLoaded,
	})

	shutdownManager := shutdown.NewManager(log, shutdownTimeout)

	session := NewSession()
	typesLoader := loader.New(shutdownManager.Context(), log, cfg.TypesPath)
	view := gui.NewView(window, session.Model, session.Editor)
	handlers := NewHandlers(session, view, typesLoader, log)

	shutdownManager.Register("types loader", typesLoader)

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		view:     view,
		session:  session,
		loader:   typesLoader,
		handlers: handlers,
		shutdown: shutdownManager,
		logger:   log,
		config:   cfg,
	}

	application.setupHandlers()

	log.Info(component, "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.view.SetSelectDirectoryHandler(a.handlers.HandleSelectDirectory)
	a.view.SetQuitHandler(a.quit)
	a.view.SetCellSelectedHandler(a.handlers.HandleCellSelected)
	a.view.SetEditInputHandler(a.handlers.HandleEditInput)
	a.view.SetEditSubmitHandler(a.handlers.HandleEditSubmit)
	a.view.SetEditFocusLostHandler(a.handlers.HandleEditFocusLost)
	a.view.SetEditCancelHandler(a.handlers.HandleEditCancel)
}

func (a *Application) quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info(component, "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetContent(a.view.GetContainer())

	if a.config.MissionDir != "" {
		a.handlers.HandleDirectoryChosen(a.config.MissionDir)
	}

	a.logger.Info(component, "GUI displayed", nil)
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	return nil
}
