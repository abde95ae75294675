package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/lfelipe/papo/internal/host"
	"github.com/lfelipe/papo/internal/lock"
	"github.com/lfelipe/papo/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "config file path (overrides ~/.papo/config.toml)")
	flag.Parse()

	var app *tui.App
	fxApp := fx.New(
		host.Module(host.Params{ConfigPath: *configFlag}),
		fx.Populate(&app),
		fx.NopLogger,
	)

	if err := fxApp.Start(context.Background()); err != nil {
		var held *lock.HeldError
		if errors.As(err, &held) {
			fmt.Fprintf(os.Stderr, "papo is already running (pid %d)\n", held.PID)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// tview owns the terminal; it has to run on the main goroutine.
	runErr := app.Run()

	if err := fxApp.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}
