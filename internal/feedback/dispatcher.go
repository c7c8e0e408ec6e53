package feedback

import (
	"context"
	"sync"
	"time"

	"gunmenu/internal/logging"
	"gunmenu/internal/screen"

	"go.uber.org/atomic"
)

type job struct {
	cue    Cue
	action *screen.Action
}

// Dispatcher plays click cues on a single worker goroutine. Jobs are queued
// up to the configured depth and dropped when the queue is full, so cues
// never overlap. A hit's action runs once its cue finishes, on the
// goroutine that calls Poll.
type Dispatcher struct {
	navigator Navigator
	player    CuePlayer
	launcher  Launcher

	jobs      chan job
	completed chan screen.Action

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.Mutex
	closed bool

	clicks   atomic.Int64
	hits     atomic.Int64
	misses   atomic.Int64
	dropped  atomic.Int64
	launches atomic.Int64
}

func NewDispatcher(navigator Navigator, player CuePlayer, launcher Launcher, queueDepth int) *Dispatcher {
	if queueDepth < 1 {
		queueDepth = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		navigator: navigator,
		player:    player,
		launcher:  launcher,
		jobs:      make(chan job, queueDepth),
		completed: make(chan screen.Action, queueDepth+1),
		ctx:       ctx,
		cancel:    cancel,
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Click handles a trigger pull at (x, y). The dent is placed immediately;
// the cue and any action are left to the worker.
func (d *Dispatcher) Click(x, y int) ClickResult {
	d.clicks.Inc()

	current := d.navigator.Current()
	zone, hit := d.navigator.ResolveZone(current, x, y)

	j := job{cue: CueMiss}
	if hit {
		d.hits.Inc()
		action := zone.Action
		j = job{cue: CueHit, action: &action}
	} else {
		d.misses.Inc()
	}

	result := ClickResult{
		Hit:    hit,
		Zone:   zone,
		Dent:   d.navigator.PlaceDent(x, y),
		Queued: d.enqueue(j),
	}

	logging.GetLogger().Debug("Click",
		"screen", current,
		"x", x,
		"y", y,
		"hit", hit,
		"zone", zone.Label,
		"queued", result.Queued)

	return result
}

func (d *Dispatcher) enqueue(j job) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.dropped.Inc()
		return false
	}

	select {
	case d.jobs <- j:
		return true
	default:
		d.dropped.Inc()
		logging.GetLogger().Warn("Cue queue full, dropping click", "cue", j.cue, "depth", cap(d.jobs))
		return false
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	logger := logging.GetLogger()

	for j := range d.jobs {
		if err := d.player.Play(d.ctx, j.cue); err != nil {
			logger.Warn("Cue playback failed", "cue", j.cue, "error", err)
		}

		if d.ctx.Err() != nil {
			return
		}
		if j.action == nil {
			continue
		}

		select {
		case d.completed <- *j.action:
		case <-d.ctx.Done():
			return
		}
	}
}

// Poll runs every action whose cue has finished. It never blocks and must
// be called from the goroutine that owns the navigation engine.
func (d *Dispatcher) Poll() int {
	n := 0
	for {
		select {
		case action := <-d.completed:
			d.execute(action)
			n++
		default:
			return n
		}
	}
}

func (d *Dispatcher) execute(action screen.Action) {
	logger := logging.GetLogger()

	switch action.Kind {
	case screen.ActionNavigate:
		// Failures are logged by the engine and leave the state unchanged.
		_ = d.navigator.Transition(action.Target)
	case screen.ActionLaunch:
		d.launches.Inc()
		result := d.launcher.Launch(action.System, action.RomPath)
		if result.Err != nil {
			logger.Error("Launch failed", "system", action.System, "rom", action.RomPath, "error", result.Err)
			return
		}
		logger.Info("Launched ROM", "system", action.System, "rom", action.RomPath, "pid", result.PID)
	default:
		logger.Error("Unknown action", "action", action)
	}
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Clicks:   d.clicks.Load(),
		Hits:     d.hits.Load(),
		Misses:   d.misses.Load(),
		Dropped:  d.dropped.Load(),
		Launches: d.launches.Load(),
	}
}

// Close stops accepting clicks and waits up to timeout for queued cues to
// finish before cancelling playback. Pending actions are discarded.
func (d *Dispatcher) Close(timeout time.Duration) {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.jobs)
		d.mu.Unlock()

		done := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(timeout):
			logging.GetLogger().Warn("Cue worker did not drain in time", "timeout", timeout)
		}

		d.cancel()
		<-done
	})
}
