package constants

const (
	ExitCodeSuccess     = 0
	ExitCodeConfigError = 1
)
