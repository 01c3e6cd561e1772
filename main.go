package main

import (
	"log"
	"os"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/app"
	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/errmsg"
	"github.com/llehouerou/drawer/internal/haptic"
	"github.com/llehouerou/drawer/internal/logging"
	"github.com/llehouerou/drawer/internal/stderr"
)

var args struct {
	Config     string `arg:"--config" help:"config file read after the default locations"`
	Log        string `arg:"--log" help:"append debug logs to this file"`
	NoHaptics  bool   `arg:"--no-haptics" help:"never pulse on sheet state changes"`
	NoGestures bool   `arg:"--no-gestures" help:"disable dragging, tap-outside and sheet keys"`
}

func main() {
	os.Exit(run())
}

func run() int {
	arg.MustParse(&args)

	cleanupLog, err := logging.Setup(args.Log)
	if err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpLogSetup, err) + "\n")
		return 1
	}
	defer cleanupLog()

	cfg, err := config.Load(args.Config)
	if err != nil {
		stderr.WriteOriginal(errmsg.FormatWith(errmsg.OpConfigLoad, args.Config, err) + "\n")
		return 1
	}

	opts, err := cfg.DrawerOptions()
	if err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpDrawerSetup, err) + "\n")
		return 1
	}
	hapticsCfg, err := cfg.GetHapticsConfig()
	if err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpHapticsSetup, err) + "\n")
		return 1
	}

	if args.NoHaptics {
		opts.EnableHaptics = false
	}
	if args.NoGestures {
		opts.EnableGestures = false
	}

	mode := hapticsCfg.Mode
	if !opts.EnableHaptics {
		mode = "off"
	}
	if mode == "click" {
		// ALSA prints to fd 2 when the speaker opens.
		if err := stderr.Start(); err != nil {
			log.Printf("stderr capture: %v", err)
		}
		defer stderr.Stop()
	}
	pulser, closePulser := haptic.ForMode(mode, hapticsCfg.Frequency, hapticsCfg.ClickDuration(), os.Stdout)
	defer closePulser()
	opts.Pulser = pulser

	m, err := app.New(opts)
	if err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpDrawerSetup, err) + "\n")
		return 1
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpRun, err) + "\n")
		return 1
	}
	return 0
}
