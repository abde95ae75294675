// Package host composes the application graph with fx: config, logger,
// instance lock, event bus, platform bridge and the TUI shell.
package host

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lfelipe/papo/internal/bridge"
	"github.com/lfelipe/papo/internal/bus"
	"github.com/lfelipe/papo/internal/config"
	"github.com/lfelipe/papo/internal/lock"
	"github.com/lfelipe/papo/internal/logging"
	"github.com/lfelipe/papo/internal/paths"
	"github.com/lfelipe/papo/internal/tui"
)

// Params holds the command-line overrides passed to the fx module.
type Params struct {
	ConfigPath string // empty = ~/.papo/config.toml
}

// Module returns the fx module composing all providers and lifecycle
// hooks.
func Module(p Params) fx.Option {
	return fx.Module("papo",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideLock,
			provideBus,
			provideBridge,
			tui.NewApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	if err := paths.EnsureTree(); err != nil {
		return nil, err
	}
	path := p.ConfigPath
	if path == "" {
		path = paths.ConfigPath()
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// First run: materialize the defaults so the user can edit them.
		if err := config.Save(path, config.Default()); err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

func provideLogger() (*zap.Logger, error) {
	return logging.New(paths.LogPath())
}

func provideLock(logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring instance lock", zap.String("dir", paths.BaseDir()))
	l, err := lock.Acquire(paths.BaseDir())
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired")
	return l, nil
}

func provideBus() *bus.Bus {
	return bus.NewBus()
}

func provideBridge(cfg *config.Config, logger *zap.Logger) (bridge.Bridge, error) {
	spool := cfg.SpoolDir
	if spool == "" {
		spool = paths.SpoolDir()
	}
	return bridge.NewLocal(spool, cfg.PickerCommand, logger)
}

func registerLifecycle(lc fx.Lifecycle, app *tui.App, lk *lock.Lock, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return nil
		},
		OnStop: func(context.Context) error {
			app.Stop()
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
