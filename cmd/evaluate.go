package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/prettymuchbryce/reportdetails/internal/config"
	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/report"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	evaluateFormat  string
	evaluateVerbose bool
)

// evaluated is one entry of the JSON output.
type evaluated struct {
	Path   string        `json:"path"`
	Result *rules.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <pattern>...",
	Short: "Evaluate fact snapshots and print the actions each report offers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if evaluateFormat != "tree" && evaluateFormat != "json" {
			return fmt.Errorf("unknown format %q (want tree or json)", evaluateFormat)
		}

		cfg, path, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		afs := afero.NewOsFs()
		var paths []string
		for _, pattern := range args {
			matches, err := facts.Glob(afs, pattern)
			if err != nil {
				return err
			}
			paths = append(paths, matches...)
		}

		out := cmd.OutOrStdout()
		if len(paths) == 0 {
			fmt.Fprintln(out, "No snapshots matched")
			if config.IsDefaultConfig(afs, path) {
				printWelcome(out, path)
			}
			return nil
		}

		return evaluatePaths(out, afs, paths, cfg.DebugMode)
	},
}

func evaluatePaths(out io.Writer, afs afero.Fs, paths []string, debugMode bool) error {
	var results []evaluated
	if evaluateFormat == "json" {
		results = evaluateConcurrently(afs, paths, rules.NewEvaluator(nil).WithDebugMode(debugMode))
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		// The structured reporter tracks one report at a time.
		evaluator := rules.NewEvaluator(report.NewStructuredWithWriter(out, evaluateVerbose)).WithDebugMode(debugMode)
		for _, p := range paths {
			e := evaluateOne(afs, p, evaluator)
			if e.Result != nil {
				fmt.Fprintln(out, dimStyle.Render("  "+p))
				fmt.Fprintln(out, formatUI(e.Result))
				fmt.Fprintln(out)
			}
			results = append(results, e)
		}
	}

	failed := 0
	for _, e := range results {
		if e.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed to load", failed, len(paths))
	}
	return nil
}

// evaluateConcurrently evaluates snapshots on a bounded pool. Results keep
// the order of paths.
func evaluateConcurrently(afs afero.Fs, paths []string, evaluator *rules.Evaluator) []evaluated {
	results := make([]evaluated, len(paths))
	p := pool.New().WithMaxGoroutines(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		p.Go(func() {
			results[i] = evaluateOne(afs, path, evaluator)
		})
	}
	p.Wait()
	return results
}

func evaluateOne(afs afero.Fs, path string, evaluator *rules.Evaluator) evaluated {
	f, err := facts.LoadWithFs(path, afs)
	if err != nil {
		slog.Error("failed to load snapshot", "path", path, "error", err)
		return evaluated{Path: path, Error: err.Error()}
	}
	return evaluated{Path: path, Result: evaluator.Evaluate(f)}
}

func formatUI(r *rules.Result) string {
	target := string(r.Delete.Target)
	if target == "" {
		target = "none"
	}
	return dimStyle.Render(fmt.Sprintf("  avatar=%s name=%s delete=%s (button %t)",
		r.UI.Avatar, r.UI.NameSection, target, r.UI.ShowDeleteButton))
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "tree", "output format: tree or json")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "show rules that did not match")
	rootCmd.AddCommand(evaluateCmd)
}
