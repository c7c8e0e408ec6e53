package constants

import "time"

const (
	CueBufferDuration = 100 * time.Millisecond // Speaker buffer size
	CueDrainTimeout   = 2 * time.Second        // Wait for queued cues on shutdown
	LaunchWaitTimeout = 5 * time.Second        // Grace period when stopping a launch on exit
)
