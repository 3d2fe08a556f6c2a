// Package daemon implements the "arvo daemon" subcommand group: run, start,
// and stop the reference daemon.
package daemon

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"

	"github.com/spf13/cobra"

	arvocmd "github.com/arvoscan/arvo/cmd"
	"github.com/arvoscan/arvo/cmd/external"
	"github.com/arvoscan/arvo/internal/daemonserver"
	"github.com/arvoscan/arvo/pkg/config"
	"github.com/arvoscan/arvo/pkg/daemon"
	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/scan"
)

// Command is the "arvo daemon" subcommand group.
var Command = &cobra.Command{
	Use:   "daemon",
	Short: "Control the Arvo daemon",
}

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the Arvo daemon in the foreground",
	Args:  cobra.NoArgs,
	Run:   arvocmd.Mainify(runMain),
}

var startCommand = &cobra.Command{
	Use:   "start",
	Short: "Start the Arvo daemon in the background",
	Args:  cobra.NoArgs,
	Run:   arvocmd.Mainify(startMain),
}

var stopCommand = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running Arvo daemon",
	Args:  cobra.NoArgs,
	Run:   arvocmd.Mainify(stopMain),
}

var configPath string

func init() {
	for _, c := range []*cobra.Command{runCommand, startCommand} {
		c.Flags().StringVar(&configPath, "config", "", "path to an Arvo configuration file")
	}
	Command.AddCommand(runCommand, startCommand, stopCommand)
}

func runMain(_ *cobra.Command, _ []string) error {
	logger := logging.RootLogger.Sublogger("daemon")

	lock, err := daemon.AcquireLock(logger)
	if err != nil {
		return fmt.Errorf("unable to acquire daemon lock (is a daemon already running?): %w", err)
	}
	defer lock.Release()

	if err := daemon.WritePID(); err != nil {
		return fmt.Errorf("unable to record daemon PID: %w", err)
	}
	defer daemon.RemovePID()

	logFile, err := daemon.OpenLog()
	if err != nil {
		return fmt.Errorf("unable to open daemon log: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(io.MultiWriter(logFile, os.Stderr))

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	registry, err := cfg.BuildRegistry()
	if err != nil {
		return fmt.Errorf("unable to build module registry: %w", err)
	}

	engine := scan.Open(false)
	engine.SetWorkerCount(cfg.WorkerCount)
	engine.SetRegistry(registry)
	defer engine.Close()

	listener, err := daemon.NewListener()
	if err != nil {
		return fmt.Errorf("unable to create daemon listener: %w", err)
	}
	defer listener.Close()

	// Watch for a termination signal before starting the server so that
	// shutdown is graceful even if it arrives during serving startup.
	terminationSignals := make(chan os.Signal, 1)
	signal.Notify(terminationSignals, arvocmd.TerminationSignals...)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- daemonserver.Serve(listener, engine, logger)
	}()

	select {
	case s := <-terminationSignals:
		logger.Printf("received termination signal: %v", s)
		return nil
	case err := <-serverErrors:
		return fmt.Errorf("daemon server terminated abnormally: %w", err)
	}
}

// startMain launches a detached "arvo daemon run" child process, matching
// the teacher's PATH-based lookup convention (cmd/external) for locating the
// Arvo executable when starting the daemon out-of-line from the foreground
// CLI invocation.
func startMain(_ *cobra.Command, _ []string) error {
	if daemon.AutostartDisabled {
		return fmt.Errorf("daemon autostart is disabled (ARVO_DISABLE_AUTOSTART is set)")
	}

	if pid, err := daemon.ReadPID(); err == nil {
		if processAlive(pid) {
			return fmt.Errorf("daemon already running (pid %d)", pid)
		}
	}

	executable := os.Args[0]
	if external.UsePathBasedLookupForDaemonStart {
		if resolved, err := exec.LookPath("arvo"); err == nil {
			executable = resolved
		}
	}

	args := []string{"daemon", "run"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}

	command := exec.Command(executable, args...)
	command.Stdin = nil
	command.Stdout = nil
	command.Stderr = nil
	detach(command)

	if err := command.Start(); err != nil {
		return fmt.Errorf("unable to start daemon: %w", err)
	}

	fmt.Printf("daemon started (pid %d)\n", command.Process.Pid)
	return nil
}

func stopMain(_ *cobra.Command, _ []string) error {
	pid, err := daemon.ReadPID()
	if err != nil {
		return fmt.Errorf("no running daemon found: %w", err)
	}

	if err := terminate(pid); err != nil {
		return fmt.Errorf("unable to signal daemon process: %w", err)
	}

	fmt.Printf("daemon stopped (pid %d)\n", pid)
	return nil
}
