//go:build windows

package daemon

import (
	"os"
	"os/exec"
	"syscall"
)

// detach configures command to run detached from the invoking console.
func detach(command *exec.Cmd) {
	command.SysProcAttr = &syscall.SysProcAttr{CreationFlags: 0x00000008} // DETACHED_PROCESS
}

// processAlive reports whether pid refers to a live process.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	return err == nil && process != nil
}

// terminate forcibly terminates the process at pid; Windows has no SIGTERM
// equivalent, so this is a hard kill rather than a graceful shutdown
// request.
func terminate(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Kill()
}
