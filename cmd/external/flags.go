package external

// UsePathBasedLookupForDaemonStart tells Arvo cmd packages that they should
// use PATH-based lookups to identify the Arvo executable when trying to
// start the Arvo daemon. This is required for start (and autostart) behavior
// to function correctly if the calling executable is not the Arvo CLI. This
// variable must be set in an init function.
var UsePathBasedLookupForDaemonStart bool
