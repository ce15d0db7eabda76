package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	profileMode := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()
	if *profileMode {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	game := NewGame(logger)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Cornerstone")
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run loop ended", "error", err)
		os.Exit(1)
	}
}
