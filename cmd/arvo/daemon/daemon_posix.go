//go:build !windows

package daemon

import (
	"os"
	"os/exec"
	"syscall"
)

// detach configures command to run in its own session, detached from the
// invoking terminal, so it survives the CLI process exiting.
func detach(command *exec.Cmd) {
	command.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// processAlive reports whether pid refers to a live process.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// terminate asks the process at pid to exit gracefully.
func terminate(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Signal(syscall.SIGTERM)
}
