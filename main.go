package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marin-t/aura/internal/audio"
	"github.com/marin-t/aura/internal/engine"
	"github.com/marin-t/aura/internal/params"
	"github.com/marin-t/aura/internal/ui"
)

func main() {
	var (
		modeFlag    = flag.String("mode", "sphere", "starting visualization mode (sphere, particles, aurora, minimal, fluid, geometric, nebula)")
		seedFlag    = flag.Int64("seed", 0, "layout seed, 0 picks one from the clock")
		sensitivity = flag.Float64("sensitivity", 1.0, "audio level multiplier")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [audio file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Without an audio file, 'a' toggles microphone capture.\n")
		fmt.Fprintf(os.Stderr, "With one, 'a' plays the file and drives the visuals from it.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	mode, ok := params.ParseMode(*modeFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", *modeFlag)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var source audio.Source
	if path := flag.Arg(0); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
			os.Exit(1)
		}
		source = audio.NewFileSource(path)
	} else {
		source = audio.NewMicSource()
	}

	cell := params.NewCell(params.Default(), mode)
	eng := engine.New(cell, rand.New(rand.NewSource(seed)))

	aud := audio.NewEngine(cell, source)
	settings := audio.DefaultSettings()
	settings.Sensitivity = *sensitivity
	aud.SetSettings(settings)

	program := tea.NewProgram(ui.New(cell, eng, aud, source), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	aud.Stop()
}
