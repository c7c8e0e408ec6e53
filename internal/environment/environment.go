package environment

import (
	"os"
	"strings"
)

const variable = "ENVIRONMENT"

// IsDevelopment reports ENVIRONMENT=DEV, in any case. Development runs are
// windowed, log at Debug and show the pointer readout.
func IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(variable)), "DEV")
}
