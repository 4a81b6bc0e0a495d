package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prettymuchbryce/reportdetails/internal/pathutil"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
	"github.com/prettymuchbryce/reportdetails/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>...",
	Short: "Re-evaluate snapshot files whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		paths := pathutil.ExpandAll(args)

		out := cmd.OutOrStdout()
		handler := func(path string, result *rules.Result, err error) {
			fmt.Fprintln(out, dimStyle.Render(time.Now().Format("15:04:05"))+" "+boldStyle.Render(path))
			if err != nil {
				printField(out, "error", errStyle.Render(err.Error()))
				return
			}
			printResult(out, result)
		}

		evaluator := rules.NewEvaluator(nil).WithDebugMode(cfg.DebugMode)
		w, err := watcher.New(paths, cfg.Watch.Debounce, evaluator, handler)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(out, "Watching %d files (%d directories), press Ctrl+C to stop\n", len(paths), w.WatchCount())
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
