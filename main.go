package main

import (
	"errors"
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ws396/wmacalc/cmd"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/settings"
	"github.com/ws396/wmacalc/internal/util"
	"go.uber.org/zap"
)

func main() {
	if err := util.InitZapLogger(globals.DefaultLogLevel, globals.DefaultLogOutput); err != nil {
		log.Fatalln(err)
	}

	s, err := settings.Load()
	if err != nil {
		util.Logger.Fatal("could not load settings", zap.Error(err))
	}

	if err := util.InitZapLogger(s.LogLevel, s.LogOutput); err != nil {
		util.Logger.Fatal("could not set up logger", zap.Error(err))
	}
	defer util.Logger.Sync()

	// Arguments run a single calculation, no arguments open the menu.
	if len(os.Args) > 1 {
		err := cmd.Run(os.Args[1:], s, os.Stdout)
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if err != nil {
			util.Logger.Error("calculation failed", zap.Error(err))
			util.Logger.Sync()
			os.Exit(1)
		}

		return
	}

	p := tea.NewProgram(cmd.InitialModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		util.Logger.Fatal(err.Error())
	}
}
