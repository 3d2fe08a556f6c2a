package daemon

import (
	"testing"

	"github.com/arvoscan/arvo/pkg/logging"
)

// TestLockCycle tests an acquisition/release cycle of the daemon lock.
func TestLockCycle(t *testing.T) {
	// Attempt to acquire the daemon lock.
	lock, err := AcquireLock(logging.RootLogger.Sublogger("daemon"))
	if err != nil {
		t.Fatal("unable to acquire lock:", err)
	}

	// Release the lock.
	if err := lock.Release(); err != nil {
		t.Fatal("unable to release lock:", err)
	}
}

// TestLockDuplicateFail tests that an additional attempt to acquire the
// daemon lock while it's already held will fail.
func TestLockDuplicateFail(t *testing.T) {
	logger := logging.RootLogger.Sublogger("daemon")

	// Acquire the daemon lock and defer its release.
	lock, err := AcquireLock(logger)
	if err != nil {
		t.Fatal("unable to acquire lock:", err)
	}
	defer lock.Release()

	// Attempt to acquire it again; this should fail since the lock is held
	// by an independent file descriptor.
	if second, err := AcquireLock(logger); err == nil {
		second.Release()
		t.Error("second lock acquisition succeeded unexpectedly")
	}
}
