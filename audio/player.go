package audio

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gunmenu/internal/constants"
	"gunmenu/internal/feedback"
	"gunmenu/internal/logging"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/atomic"
)

const sampleRate = beep.SampleRate(44100)

// Player decodes the theme's hit and miss cues once and plays them through
// the speaker. Without an audio device it stays silent.
type Player struct {
	mu      sync.Mutex
	buffers map[feedback.Cue]*beep.Buffer
	ready   bool
	played  atomic.Int64
}

// Load decodes every cue file. A missing or undecodable cue leaves that
// cue silent.
func Load(files map[feedback.Cue]string) *Player {
	p := &Player{buffers: make(map[feedback.Cue]*beep.Buffer)}
	logger := logging.GetLogger()

	for cue, path := range files {
		buf, err := decode(path)
		if err != nil {
			logger.Warn("Unable to load cue", "warning", "AssetLoadWarning", "cue", cue, "path", path, "error", err)
			continue
		}
		p.buffers[cue] = buf
	}

	return p
}

func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return buf, nil
}

// Initialize opens the speaker. Until it succeeds the player is silent and
// Play returns immediately.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.CueBufferDuration)); err != nil {
		logging.GetLogger().Warn("Audio unavailable, cues disabled", "error", err)
		return err
	}

	p.ready = true
	return nil
}

func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.ready
}

// Play streams cue to the speaker and waits for it to finish or for ctx to
// be done, whichever comes first.
func (p *Player) Play(ctx context.Context, cue feedback.Cue) error {
	p.mu.Lock()
	buf, ok := p.buffers[cue]
	ready := p.ready
	p.mu.Unlock()

	if !ready || !ok {
		return nil
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(buf.Streamer(0, buf.Len()), beep.Callback(func() {
		close(done)
	})))
	p.played.Inc()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// Samples is the length of a loaded cue, zero if the cue is not loaded.
func (p *Player) Samples(cue feedback.Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if buf, ok := p.buffers[cue]; ok {
		return buf.Len()
	}
	return 0
}

func (p *Player) Played() int64 {
	return p.played.Load()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Clear()
		speaker.Close()
		p.ready = false
	}
}
