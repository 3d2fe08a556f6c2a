package daemon

import (
	"os"
)

// AutostartDisabled controls whether or not daemon autostart is disabled for
// Arvo. It is set automatically based on the ARVO_DISABLE_AUTOSTART
// environment variable.
var AutostartDisabled bool

func init() {
	// Check whether or not autostart should be disabled.
	AutostartDisabled = os.Getenv("ARVO_DISABLE_AUTOSTART") == "1"
}
