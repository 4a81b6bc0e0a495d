package cmd

import (
	"errors"
	"fmt"

	"github.com/prettymuchbryce/reportdetails/internal/collab"
	"github.com/prettymuchbryce/reportdetails/internal/details"
	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
	"github.com/spf13/cobra"
)

// Pseudo action keys for the delete and back buttons.
const (
	deleteAction = "delete"
	backAction   = "back"
)

var (
	triggerConfirm bool
	triggerClose   bool
	triggerImage   string
)

var triggerCmd = &cobra.Command{
	Use:   "trigger <file> <action>",
	Short: "Dry-run a menu or header action (or delete) against a snapshot",
	Long: "Dry-run a menu or header action against a snapshot. Collaborator calls are logged, never performed.\n" +
		"Use an action key printed by evaluate, \"delete\" for the delete button or \"back\" for the back button.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		table, err := cfg.RouteTable()
		if err != nil {
			return err
		}

		f, err := facts.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}

		ctrl := details.New(f, rules.NewEvaluator(nil).WithDebugMode(cfg.DebugMode), collab.NewDryRun(), details.Options{
			Routes:         table,
			ExportFilename: cfg.ExportTemplate(),
		})

		out := cmd.OutOrStdout()
		ctx := cmd.Context()
		key := args[1]

		// The first failure decides the exit status; later steps still run so
		// the printed trace is complete.
		var failed error
		noteErr := func(err error) {
			if err == nil {
				return
			}
			printField(out, "error", errStyle.Render(err.Error()))
			if failed == nil {
				failed = err
			}
		}

		var outcome details.Outcome
		_, isHeader := ctrl.Result().HeaderAction(rules.HeaderKey(key))
		switch {
		case key == deleteAction:
			if !ctrl.RequestDelete() {
				return fmt.Errorf("delete: %w", details.ErrNotOffered)
			}
			outcome = details.OutcomeConfirmationRequired
		case key == backAction:
			outcome, err = ctrl.Back(ctx)
		case isHeader && rules.HeaderKey(key) == rules.HeaderUpdateAvatar:
			outcome, err = ctrl.UpdateAvatar(ctx, triggerImage)
		case isHeader:
			outcome, err = ctrl.TriggerHeader(ctx, rules.HeaderKey(key))
		default:
			outcome, err = ctrl.Trigger(ctx, rules.ActionKey(key))
			if errors.Is(err, details.ErrNotOffered) {
				return fmt.Errorf("%w (menu: %s; header: %s)", err,
					formatKeys(ctrl.Result().MenuKeys()), formatKeys(ctrl.Result().HeaderKeys()))
			}
		}
		printField(out, key, formatOutcome(outcome))
		noteErr(err)

		switch outcome {
		case details.OutcomeNoticeShown:
			printField(out, "notice", string(ctrl.Notice()))
		case details.OutcomeConfirmationRequired:
			modal := ctrl.Modal()
			printField(out, "modal", string(modal))
			if triggerConfirm {
				outcome, err = ctrl.Confirm(ctx, modal)
				printField(out, "confirm", formatOutcome(outcome))
				noteErr(err)
			}
		}

		if ctrl.DownloadError() {
			printField(out, "download", errStyle.Render("export failed"))
		}

		if triggerClose {
			outcome, err = ctrl.Close(ctx)
			printField(out, "close", formatOutcome(outcome))
			noteErr(err)
		}
		printField(out, "deletion", string(ctrl.DeleteState()))

		return failed
	},
}

func init() {
	triggerCmd.Flags().BoolVar(&triggerConfirm, "confirm", false, "accept the confirmation modal if one opens")
	triggerCmd.Flags().BoolVar(&triggerClose, "close", false, "close the view afterwards, running a pending delete")
	triggerCmd.Flags().StringVar(&triggerImage, "image", "", "image file for update_avatar")
	rootCmd.AddCommand(triggerCmd)
}
