package feedback

import (
	"context"
	"fmt"

	"gunmenu/internal/nav"
	"gunmenu/internal/screen"
)

type Cue int

const (
	CueHit Cue = iota
	CueMiss
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueMiss:
		return "miss"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// CuePlayer plays a cue to completion. Play blocks until the cue ends or
// ctx is done.
type CuePlayer interface {
	Play(ctx context.Context, cue Cue) error
}

type LaunchResult struct {
	PID int
	Err error
}

// Launcher hands a ROM to the external emulator launcher. The result is
// logged only.
type Launcher interface {
	Launch(system, romPath string) LaunchResult
}

// Navigator is the part of the navigation engine the dispatcher drives.
type Navigator interface {
	Current() string
	ResolveZone(key string, x, y int) (screen.Zone, bool)
	Transition(target string) error
	PlaceDent(x, y int) nav.Dent
}

type ClickResult struct {
	Hit    bool
	Zone   screen.Zone
	Dent   nav.Dent
	Queued bool // False when the cue queue was full or closed
}

type Stats struct {
	Clicks   int64
	Hits     int64
	Misses   int64
	Dropped  int64
	Launches int64
}
