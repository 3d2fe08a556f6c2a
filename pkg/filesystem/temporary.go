package filesystem

const (
	// TemporaryNamePrefix is the file name prefix used for all temporary files
	// and directories created by Arvo, such as those written by
	// WriteFileAtomic before their final rename and quarantined files staged
	// before being moved into the quarantine directory. It may be suffixed
	// with additional elements if desired.
	TemporaryNamePrefix = ".arvo-temporary-"
)
