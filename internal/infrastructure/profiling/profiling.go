// Package profiling maps a command-line mode onto pkg/profile.
package profiling

import (
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
)

// Stopper ends a running profile and flushes it to disk
type Stopper interface {
	Stop()
}

type noop struct{}

func (noop) Stop() {}

// Modes lists the accepted mode names
var Modes = []string{"cpu", "mem", "allocs", "block", "mutex", "trace"}

// Option returns the pkg/profile option for mode
func Option(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	case "block":
		return profile.BlockProfile, nil
	case "mutex":
		return profile.MutexProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, eris.Errorf("unknown profile mode %q", mode)
	}
}

// Start begins profiling into dir. An empty mode profiles nothing.
func Start(mode, dir string) (Stopper, error) {
	if mode == "" {
		return noop{}, nil
	}
	opt, err := Option(mode)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = "."
	}
	return profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
}
