package arvo

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for Arvo. It is
// set automatically based on the ARVO_DEBUG environment variable.
var DebugEnabled bool

func init() {
	DebugEnabled = os.Getenv("ARVO_DEBUG") == "1"
}
