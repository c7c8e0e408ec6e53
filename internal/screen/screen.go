package screen

import (
	"fmt"
	"regexp"
	"strconv"
)

const MainKey = "main"

const (
	PrevLabel = "prev"
	MainLabel = "main"
	NextLabel = "next"
)

// Rect bounds are inclusive on all four edges.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func (r Rect) Contains(x, y int) bool {
	return r.X1 <= x && x <= r.X2 && r.Y1 <= y && y <= r.Y2
}

func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }

type ActionKind int

const (
	ActionNavigate ActionKind = iota
	ActionLaunch
)

func (k ActionKind) String() string {
	switch k {
	case ActionNavigate:
		return "NavigateTo"
	case ActionLaunch:
		return "LaunchRom"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is NavigateTo(Target) or LaunchRom(System, RomPath) depending on Kind.
type Action struct {
	Kind    ActionKind
	Target  string
	System  string
	RomPath string
}

func NavigateTo(target string) Action {
	return Action{Kind: ActionNavigate, Target: target}
}

func LaunchRom(system, romPath string) Action {
	return Action{Kind: ActionLaunch, System: system, RomPath: romPath}
}

func (a Action) String() string {
	if a.Kind == ActionLaunch {
		return fmt.Sprintf("LaunchRom(%s, %s)", a.System, a.RomPath)
	}
	return fmt.Sprintf("NavigateTo(%s)", a.Target)
}

type Zone struct {
	Rect    Rect
	Label   string
	Image   string
	Overlay string // Set on game buttons only
	Action  Action
}

func (z Zone) IsGame() bool {
	return z.Overlay != ""
}

type Screen struct {
	Key        string
	Background string
	Zones      []Zone
}

// Key builds a system page key; page is 1-based.
func Key(system string, page int) string {
	return fmt.Sprintf("%s_%d", system, page)
}

var pageSuffix = regexp.MustCompile(`_(\d+)$`)

// PageNumber extracts the numeric suffix of a screen key.
func PageNumber(key string) (int, bool) {
	m := pageSuffix.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
