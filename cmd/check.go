package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tempo/internal/config"
	"github.com/papapumpkin/tempo/internal/inspect"
	"github.com/papapumpkin/tempo/internal/span"
	"github.com/papapumpkin/tempo/internal/ui"
	"github.com/papapumpkin/tempo/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate duration fields in a TOML, JSON or YAML file",
	Long: `Check loads a TOML, JSON or YAML document and validates that each named
key holds a string in duration notation. Keys are dotted paths such as
"server.timeout". When no --key is given, check.keys from the config is used.

With --fix, valid values that are not in canonical form are rewritten in
place. With --watch, the file is re-checked every time it changes.`,
	Example: `  tempo check svc.toml --key server.timeout --key retry.delay
  tempo check --fix --watch svc.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceP("key", "k", nil, "dotted key to validate (repeatable)")
	checkCmd.Flags().Bool("fix", false, "rewrite valid values into canonical notation")
	checkCmd.Flags().Bool("watch", false, "re-check the file whenever it changes")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := ui.New()
	printer.NoColor = cfg.NoColor

	keys, _ := cmd.Flags().GetStringSlice("key")
	if len(keys) == 0 {
		keys = cfg.Check.Keys
	}
	fix, _ := cmd.Flags().GetBool("fix")
	watching, _ := cmd.Flags().GetBool("watch")

	c := checker{
		printer: printer,
		path:    args[0],
		keys:    keys,
		fix:     fix,
		verbose: cfg.Verbose,
	}
	if !watching {
		return c.run()
	}
	return c.watch(cfg.Watch.Debounce)
}

// checker runs one check (and optional fix) of a document.
type checker struct {
	printer *ui.Printer
	path    string
	keys    []string
	fix     bool
	verbose bool
}

func (c checker) run() error {
	if c.fix {
		changes, err := inspect.Canonicalize(c.path, c.keys)
		if err != nil {
			return fmt.Errorf("fixing %s: %w", c.path, err)
		}
		c.printer.Canonicalized(c.path, changes)
	}

	report, err := inspect.Check(c.path, c.keys)
	if err != nil {
		return fmt.Errorf("checking %s: %w", c.path, err)
	}
	c.printer.CheckReport(report, c.verbose)
	if err := report.Err(); err != nil {
		return fmt.Errorf("%d invalid key(s) in %s: %w", report.Failed(), c.path, err)
	}
	return nil
}

// watch checks once, then again after every debounced change until
// interrupted. Check failures are reported but do not stop watching.
func (c checker) watch(debounce span.Duration) error {
	if err := c.run(); err != nil {
		c.printer.Error(err.Error())
	}

	w, err := watch.New(c.path, debounce.Std())
	if err != nil {
		return fmt.Errorf("watching %s: %w", c.path, err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", c.path, err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			c.printer.Info("\nstopped watching")
			cancel()
		case <-ctx.Done():
		}
	}()

	c.printer.Watching(c.path, debounce.String())
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if change.Kind == watch.ChangeRemoved {
				c.printer.FileRemoved(c.path)
				continue
			}
			c.printer.FileChanged(c.path)
			if err := c.run(); err != nil {
				c.printer.Error(err.Error())
			}
		}
	}
}
