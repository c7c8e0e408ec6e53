package internal

const (
	DefaultLaunchCommand = "/opt/retropie/supplementary/runcommand/runcommand.sh"
	DefaultLanguage      = "en"
	DefaultCueQueueDepth = 4
	MaxCueQueueDepth     = 64
	DefaultScreenWidth   = 1920
	DefaultScreenHeight  = 1080
)
