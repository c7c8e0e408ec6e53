package version

import (
	"fmt"
	"os"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.Version, b.GitCommit, b.BuildDate)
}

func Get() BuildInfo {
	v := Version
	if override := os.Getenv("GUNMENU_VERSION"); override != "" {
		v = override
	}
	return BuildInfo{
		Version:   v,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}
