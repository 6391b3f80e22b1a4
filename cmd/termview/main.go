// Command termview runs the sandbox in a terminal, live or from a recording.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/application/replay"
	"github.com/younwookim/tileforge/internal/application/session"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/infrastructure/profiling"
	"github.com/younwookim/tileforge/internal/input"
	"github.com/younwookim/tileforge/internal/present"
)

type options struct {
	replayPath  string
	frames      int
	configDir   string
	logPath     string
	profileMode string
}

func main() {
	var opt options
	flag.StringVar(&opt.replayPath, "replay", "", "Play back a recording instead of reading the keyboard")
	flag.IntVar(&opt.frames, "frames", 0, "Stop after this many frames (0 = until quit or end of replay)")
	flag.StringVar(&opt.configDir, "config", "cmd/sandbox/configs", "Config directory")
	flag.StringVar(&opt.logPath, "log", "", "Write logs to this file")
	flag.StringVar(&opt.profileMode, "profile", "", "Profile mode: cpu, mem, allocs, block, mutex or trace")
	flag.Parse()

	// The terminal owns stdout, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if opt.logPath != "" {
		f, err := os.Create(opt.logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "termview:", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := run(log, opt); err != nil {
		log.Error("termview failed", "error", eris.ToString(err, false))
		fmt.Fprintln(os.Stderr, "termview:", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, opt options) error {
	prof, err := profiling.Start(opt.profileMode, ".")
	if err != nil {
		return err
	}
	defer prof.Stop()

	loader := config.NewLoader(opt.configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		return eris.Wrap(err, "failed to load config")
	}

	kb := &keyboard{}
	var provider input.Provider = kb
	fixed := false
	if opt.replayPath != "" {
		data, err := replay.LoadReplay(opt.replayPath)
		if err != nil {
			return err
		}
		r := replay.NewReplayer(*data)
		if fixed, err = applyReplay(cfg, loader, r); err != nil {
			return err
		}
		provider = r
		log.Info("replaying", "path", opt.replayPath, "frames", r.TotalFrames(), "session", data.Session,
			"stage", r.Stage(), "w", data.Width, "h", data.Height)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "init terminal")
	}
	defer screen.Fini()
	screen.EnableMouse()

	term := present.NewTerminal(screen)
	if w, h := term.PixelSize(); !fixed && w > 0 && h > 0 {
		cfg.Engine.Display.ScreenWidth, cfg.Engine.Display.ScreenHeight = w, h
	}

	s, err := session.New(session.Options{
		Config: cfg.Engine,
		Stage:  cfg.Stage,
		Assets: os.DirFS("."),
		Logger: log,
	})
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	go forward(screen, events)

	fl := &frameLoop{
		session:  s,
		term:     term,
		provider: provider,
		kb:       kb,
		events:   events,
		log:      log,
		fixed:    fixed,
	}
	n := fl.run(opt.frames, cfg.Engine.Display.Framerate)
	log.Info("stopped", "frames", n)
	return nil
}

// applyReplay points cfg at the recording's seed, stage and frame size.
// It reports whether the frame size came from the recording; recorded cursor
// positions only reach the recorded tiles at that size.
func applyReplay(cfg *config.GameConfig, loader *config.Loader, r *replay.Replayer) (bool, error) {
	cfg.Engine.World.Seed = r.Seed()

	switch name := r.Stage(); {
	case name == "":
		// Older recordings carry no stage; keep the configured one
	case name == session.PlatformStage:
		cfg.Stage = nil
	case cfg.Stage == nil || cfg.Stage.ID != name:
		st, err := loader.LoadStage(name)
		if err != nil {
			return false, eris.Wrapf(err, "replay stage %s", name)
		}
		cfg.Stage = st
	}

	w, h := r.Viewport()
	if w <= 0 || h <= 0 {
		return false, nil
	}
	cfg.Engine.Display.ScreenWidth, cfg.Engine.Display.ScreenHeight = w, h
	return true, nil
}

// forward relays terminal events to the frame loop until the screen closes
func forward(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		events <- ev
	}
}

// screenPresenter is the part of present.Terminal the frame loop drives
type screenPresenter interface {
	present.Presenter
	SetStatus(s string)
	PixelSize() (int, int)
}

// frameLoop steps and presents the session once per tick
type frameLoop struct {
	session  *session.Session
	term     screenPresenter
	provider input.Provider
	kb       *keyboard
	events   <-chan tcell.Event
	log      *slog.Logger
	fixed    bool // keep the frame size when the terminal resizes
}

func (l *frameLoop) run(frames, fps int) int {
	fps = max(fps, 1)
	dt := 1.0 / float64(fps)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	n := 0
	for frames <= 0 || n < frames {
		if !l.drain() {
			break
		}
		if !l.session.Advance(l.provider, dt) {
			break
		}
		n++
		l.term.SetStatus(status(l.session))
		if err := l.term.Present(l.session.Render()); err != nil {
			l.log.Error("present failed", "error", err, "frame", n)
		}
		<-ticker.C
	}
	return n
}

// drain applies pending events; false means the user asked to quit
func (l *frameLoop) drain() bool {
	for {
		select {
		case ev, ok := <-l.events:
			if !ok {
				return false
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				if !l.fixed {
					l.session.Resize(l.term.PixelSize())
				}
				continue
			}
			l.kb.handle(ev)
			if l.kb.quit {
				return false
			}
		default:
			return true
		}
	}
}

func status(s *session.Session) string {
	tr, _ := s.World().Transform.Get(s.Player())
	return fmt.Sprintf("frame %d  %s  zoom %.2f  pos %.0f,%.0f  q quit",
		s.Frame(), s.State(), s.Camera().Zoom, tr.Pos.X(), tr.Pos.Y())
}
