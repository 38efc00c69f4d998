package doksnet

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
	"github.com/arthur-debert/doksnet/pkg/reconcile"
	"github.com/arthur-debert/doksnet/pkg/ui"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
)

func newTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "test",
		Short:   MsgTestShort,
		Long:    MsgTestLong,
		Example: MsgTestExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			report := ws.Verify()
			if err := r.RenderResult(report); err != nil {
				return err
			}
			if !report.OK() {
				return errors.Newf(errors.ErrVerificationFailed, MsgErrLinksFailed, report.Failed, report.Total()).
					WithDetail("failed", report.Failed).
					WithDetail("total", report.Total())
			}
			return nil
		},
	}
}

func newTestInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "test-interactive",
		Short:   MsgTestInteractiveShort,
		Long:    MsgTestInteractiveLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errors.New(errors.ErrInvalidInput, MsgErrNotInteractive)
			}

			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			failures := ws.Verify().Failures()
			if len(failures) == 0 {
				return r.RenderMessage(MsgAllLinksPass)
			}

			console, err := a.console(cmd)
			if err != nil {
				return err
			}
			session := &reconcile.Session{
				Workspace: ws,
				Prompter:  console,
				OnOutcome: func(o reconcile.Outcome) {
					if err := renderOutcome(console.Renderer, o); err != nil {
						logger := logging.GetLogger("cmd")
						logger.Warn().Err(err).Msg("Failed to render outcome")
					}
				},
			}

			summary, err := session.Run(failures)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.SessionResult{Summary: summary})
		},
	}
}

// renderOutcome reports one applied decision
func renderOutcome(r ui.Renderer, o reconcile.Outcome) error {
	short := o.Item.ShortID()
	if o.Err != nil {
		return r.RenderMessage(fmt.Sprintf(MsgOutcomeFailed, o.Action, short, display.ErrorMessage(o.Err)))
	}

	switch o.Action {
	case reconcile.ActionAccept:
		return r.RenderMessage(fmt.Sprintf(MsgOutcomeAccepted, short))
	case reconcile.ActionEdit:
		return r.RenderResult(&display.CommandResult{Message: fmt.Sprintf(MsgOutcomeEdited, short), Check: o.Recheck})
	case reconcile.ActionRemove:
		return r.RenderMessage(fmt.Sprintf(MsgOutcomeRemoved, short))
	default:
		return r.RenderMessage(fmt.Sprintf(MsgOutcomeSkipped, short))
	}
}
