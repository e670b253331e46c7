// Command vclview shows a scene described by a yaml file.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/vcl/draw"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain returns the process exit code once all deferred cleanup has run.
func runMain(args []string) int {
	flags := flag.NewFlagSet("vclview", flag.ContinueOnError)
	configPath := flags.String("config", "scene.yaml", "path to the scene description")
	verbose := flags.Bool("verbose", false, "enable debug logging")
	cpuProfile := flags.Bool("cpuprofile", false, "write a cpu profile to the working directory")
	memProfile := flags.Bool("memprofile", false, "write a memory profile to the working directory")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch {
	case *cpuProfile:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case *memProfile:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if err := run(*configPath); err != nil {
		slog.Error("vclview failed", slog.String("error", err.Error()))
		return 1
	}

	return 0
}

func run(configPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	var resources draw.Resources
	defer resources.Release()

	objects, err := readScene(config, &resources)
	if err != nil {
		return err
	}

	defer func() {
		for _, object := range objects {
			object.Release()
		}
	}()

	slog.Info("Scene loaded", slog.String("path", configPath), slog.Int("objects", len(objects)))

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(NewGame(config, objects))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}
