// Package scan implements the "arvo scan" subcommand.
package scan

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	arvocmd "github.com/arvoscan/arvo/cmd"
	"github.com/arvoscan/arvo/pkg/config"
	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/scan"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// Command is the "arvo scan" subcommand.
var Command = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scan a file or directory",
	Args:  cobra.ExactArgs(1),
	Run:   arvocmd.Mainify(run),
}

var flags struct {
	remote      bool
	recurse     bool
	threaded    bool
	configPath  string
	verbose     int
}

func init() {
	Command.Flags().BoolVar(&flags.remote, "remote", false, "scan via the daemon instead of in-process")
	Command.Flags().BoolVar(&flags.recurse, "recurse", true, "recurse into subdirectories")
	Command.Flags().BoolVar(&flags.threaded, "threaded", true, "use a worker pool for local scans")
	Command.Flags().StringVar(&flags.configPath, "config", "", "path to an Arvo configuration file")
	Command.Flags().IntVarP(&flags.verbose, "verbose", "v", 0, "verbosity level")
}

func run(_ *cobra.Command, arguments []string) error {
	path := arguments[0]

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	engine := scan.Open(flags.remote)
	engine.SetVerbose(flags.verbose)
	engine.SetWorkerCount(cfg.WorkerCount)

	if !flags.remote {
		registry, err := cfg.BuildRegistry()
		if err != nil {
			return fmt.Errorf("unable to build module registry: %w", err)
		}
		engine.SetRegistry(registry)
	}

	defer engine.Close()

	var requestFlags scan.Flags
	if flags.recurse {
		requestFlags |= scan.Recurse
	}
	if flags.threaded {
		requestFlags |= scan.Threaded
	}

	s, err := engine.NewScan(path, requestFlags)
	if err != nil {
		return fmt.Errorf("unable to construct scan: %w", err)
	}
	defer s.Free()

	var reportCount int
	var hitCount int
	s.AddObserver(func(r *report.Report) {
		reportCount++
		if r.Status.IsIERROR() || r.Status.Verdict().Greater(verdict.Clean) {
			hitCount++
		}
		printReport(r)
	})

	status, err := s.Start()
	if err != nil {
		if status == scan.CannotConnect {
			return fmt.Errorf("unable to connect to daemon: %w", err)
		}
		return err
	}

	ctx := context.Background()
	for {
		status, err = s.Run(ctx)
		if err != nil {
			return err
		}
		if status == scan.Completed {
			break
		}
	}

	fmt.Printf("scanned %d file(s), %d flagged\n", reportCount, hitCount)

	if hitCount > 0 {
		os.Exit(2)
	}

	return nil
}

func printReport(r *report.Report) {
	if r.ModuleName != "" {
		fmt.Printf("%s: %s (%s: %s)\n", r.Path, r.Status, r.ModuleName, r.ModuleReport)
	} else {
		fmt.Printf("%s: %s\n", r.Path, r.Status)
	}
}
