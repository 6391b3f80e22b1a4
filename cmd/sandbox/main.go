// Command sandbox opens the tile-world sandbox in a window.
package main

import (
	"embed"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/application/game"
	"github.com/younwookim/tileforge/internal/application/scene/sandbox"
	"github.com/younwookim/tileforge/internal/application/session"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/infrastructure/profiling"
	"github.com/younwookim/tileforge/internal/input"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded set")
	assetsDir := flag.String("assets", ".", "Directory sprite and tileset paths are relative to")
	profileMode := flag.String("profile", "", "Profile mode: cpu, mem, allocs, block, mutex or trace")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *recordFlag, *configDir, *assetsDir, *profileMode); err != nil {
		log.Error("sandbox failed", "error", eris.ToString(err, false))
		os.Exit(1)
	}
}

func run(log *slog.Logger, recordPath, configDir, assetsDir, profileMode string) error {
	prof, err := profiling.Start(profileMode, ".")
	if err != nil {
		return err
	}
	defer prof.Stop()

	loader, err := configLoader(configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return eris.Wrap(err, "failed to load config")
	}

	s, err := session.New(session.Options{
		Config: cfg.Engine,
		Stage:  cfg.Stage,
		Assets: os.DirFS(assetsDir),
		Logger: log,
	})
	if err != nil {
		return err
	}

	stageName := session.PlatformStage
	if cfg.Stage != nil {
		stageName = cfg.Stage.ID
	}
	d := cfg.Engine.Display
	scene := sandbox.New(s, input.NewEbitenProvider(nil), recordPath, cfg.Engine.World.Seed, stageName, log)

	g := game.New(scene, d.ScreenWidth, d.ScreenHeight)
	g.SetDT(1.0 / float64(max(d.Framerate, 1)))
	g.SetResizable(d.Resizable, d.Scale)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(max(d.Framerate, 1))
	if d.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Info("starting", "w", d.ScreenWidth, "h", d.ScreenHeight, "stage", stageName)
	if err := ebiten.RunGame(g); err != nil {
		return eris.Wrap(err, "game loop")
	}
	return nil
}

func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, eris.Wrap(err, "failed to get config subfs")
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
