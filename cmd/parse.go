package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tempo/internal/notation"
	"github.com/papapumpkin/tempo/internal/span"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Parse duration notation and show its canonical form",
	Long: `Parse reads each argument as duration notation and prints its canonical
form, Go duration and milliseconds. An empty argument is the zero duration,
the same as an empty value in a config file.`,
	Example: `  tempo parse 1ms2S3H
  tempo parse --terms "4W 2D" 90S
  tempo parse --json 1M`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("terms", false, "list the parsed terms")
	parseCmd.Flags().Bool("json", false, "print results as a JSON array")
	rootCmd.AddCommand(parseCmd)
}

// parsedTerm is the JSON view of one notation term.
type parsedTerm struct {
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

// parseResult is the outcome of parsing one argument.
type parseResult struct {
	Input     string       `json:"input"`
	Canonical string       `json:"canonical"`
	Duration  string       `json:"duration"`
	Millis    int64        `json:"millis"`
	Terms     []parsedTerm `json:"terms,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	withTerms, _ := cmd.Flags().GetBool("terms")
	asJSON, _ := cmd.Flags().GetBool("json")

	results, err := parseAll(args, withTerms)
	if err != nil {
		return err
	}
	if asJSON {
		return writeParseJSON(cmd.OutOrStdout(), results)
	}
	writeParseText(cmd.OutOrStdout(), results)
	return nil
}

// parseAll parses every input, stopping at the first malformed one. The
// empty string is the rendering of zero and parses like it does in config
// files.
func parseAll(inputs []string, withTerms bool) ([]parseResult, error) {
	results := make([]parseResult, 0, len(inputs))
	for _, in := range inputs {
		d, err := span.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", in, err)
		}
		canonical, err := span.Format(d)
		if err != nil {
			return nil, fmt.Errorf("formatting %q: %w", in, err)
		}

		r := parseResult{
			Input:     in,
			Canonical: canonical,
			Duration:  d.String(),
			Millis:    d.Milliseconds(),
		}
		if withTerms && in != "" {
			terms, err := notation.Parse(in)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", in, err)
			}
			r.Terms = make([]parsedTerm, len(terms))
			for i, t := range terms {
				r.Terms[i] = parsedTerm{Value: t.Value, Unit: t.Unit.Name()}
			}
		}
		results = append(results, r)
	}
	return results, nil
}

func writeParseText(w io.Writer, results []parseResult) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Input)
		fmt.Fprintf(w, "  canonical: %s\n", r.Canonical)
		fmt.Fprintf(w, "  duration:  %s\n", r.Duration)
		fmt.Fprintf(w, "  millis:    %d\n", r.Millis)
		if len(r.Terms) > 0 {
			parts := make([]string, len(r.Terms))
			for j, t := range r.Terms {
				parts[j] = fmt.Sprintf("%d %s", t.Value, t.Unit)
			}
			fmt.Fprintf(w, "  terms:     %s\n", strings.Join(parts, ", "))
		}
	}
}

func writeParseJSON(w io.Writer, results []parseResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
