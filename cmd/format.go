package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tempo/internal/notation"
	"github.com/papapumpkin/tempo/internal/span"
)

var formatCmd = &cobra.Command{
	Use:   "format <duration>...",
	Short: "Render durations in canonical notation",
	Long: `Format renders each argument in canonical duration notation. Arguments
use Go duration syntax ("90m", "1h30m0.5s") or, with --millis, a whole
number of milliseconds. A zero duration renders as an empty line.`,
	Example: `  tempo format 3h0m2.001s
  tempo format --millis 86400000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().Bool("millis", false, "arguments are integer milliseconds")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	millis, _ := cmd.Flags().GetBool("millis")
	return formatAll(cmd.OutOrStdout(), args, millis)
}

// formatAll writes one canonical rendering per input, stopping at the first
// input that cannot be read or rendered.
func formatAll(w io.Writer, inputs []string, millis bool) error {
	for _, in := range inputs {
		d, err := readDuration(in, millis)
		if err != nil {
			return err
		}
		text, err := span.Format(d)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", in, err)
		}
		fmt.Fprintln(w, text)
	}
	return nil
}

func readDuration(in string, millis bool) (time.Duration, error) {
	if !millis {
		d, err := time.ParseDuration(in)
		if err != nil {
			return 0, fmt.Errorf("reading duration: %w", err)
		}
		return d, nil
	}

	n, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reading milliseconds %q: %w", in, err)
	}
	d, err := span.FromTerm(notation.Term{Value: n, Unit: notation.Milliseconds})
	if err != nil {
		return 0, fmt.Errorf("reading milliseconds %q: %w", in, err)
	}
	return d, nil
}
