package arvo

import (
	"os"
)

// DevelopmentModeEnabled controls whether or not development mode is enabled
// for Arvo. It is set automatically based on the ARVO_DEVELOPMENT environment
// variable. No other code reads it, so the daemon and the CLI behave the
// same whether or not it is set.
var DevelopmentModeEnabled bool

func init() {
	DevelopmentModeEnabled = os.Getenv("ARVO_DEVELOPMENT") == "1"
}
