package doksnet

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/doksnet/pkg/core"
	"github.com/arthur-debert/doksnet/pkg/discovery"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

func newNewCmd(a *app) *cobra.Command {
	var defaultDoc string

	cmd := &cobra.Command{
		Use:     "new [dir]",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.workDir()
			if err != nil {
				return errors.Wrap(err, errors.ErrIO, MsgErrWorkingDir)
			}
			if len(args) == 1 {
				if filepath.IsAbs(args[0]) {
					dir = args[0]
				} else {
					dir = filepath.Join(dir, args[0])
				}
			}

			if !cmd.Flags().Changed("default-doc") {
				defaultDoc, err = a.suggestDefaultDoc(cmd, dir)
				if err != nil {
					return err
				}
			}

			ws, err := core.Init(a.fs, dir, a.cfg.Store.File, defaultDoc)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf(MsgStoreCreated, ws.Path)
			if ws.Store.DefaultDoc != "" {
				msg += "\n" + fmt.Sprintf(MsgDefaultDoc, ws.Store.DefaultDoc)
			} else {
				msg += "\n" + MsgNoDefaultDoc
			}
			return r.RenderResult(&display.CommandResult{Message: msg})
		},
	}

	cmd.Flags().StringVar(&defaultDoc, "default-doc", "", MsgFlagDefaultDoc)
	return cmd
}

// suggestDefaultDoc picks the default documentation file for a new store.
// Without a terminal the first candidate wins.
func (a *app) suggestDefaultDoc(cmd *cobra.Command, dir string) (string, error) {
	candidates, err := discovery.FindDocumentationFiles(a.fs, dir)
	if err != nil {
		return "", err
	}
	if !a.interactive() {
		if len(candidates) == 0 {
			return "", nil
		}
		return candidates[0], nil
	}

	console, err := a.console(cmd)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return console.AskPartition(MsgChooseDefaultDoc, "")
	}
	return console.ChooseFile(MsgChooseDefaultDoc, candidates)
}

func newAddCmd(a *app) *cobra.Command {
	var (
		req core.AddRequest
		yes bool
	)

	cmd := &cobra.Command{
		Use:     "add",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
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

			if a.interactive() {
				ok, err := a.completeAdd(cmd, ws, &req, yes)
				if err != nil {
					return err
				}
				if !ok {
					return r.RenderMessage(MsgAddCancelled)
				}
			} else if req.Code == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNeedCode)
			}

			rec, err := ws.Add(req)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.CommandResult{Message: MsgLinkCreated, Record: &rec})
		},
	}

	cmd.Flags().StringVar(&req.Doc, "doc", "", MsgFlagDoc)
	cmd.Flags().StringVar(&req.Code, "code", "", MsgFlagCode)
	cmd.Flags().StringVar(&req.Description, "description", "", MsgFlagDescription)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

// completeAdd asks for the values not given as flags, previews both
// partitions and asks for confirmation unless yes is set
func (a *app) completeAdd(cmd *cobra.Command, ws *core.Workspace, req *core.AddRequest, yes bool) (bool, error) {
	console, err := a.console(cmd)
	if err != nil {
		return false, err
	}

	flags := cmd.Flags()
	if !flags.Changed("doc") {
		if req.Doc, err = console.AskPartition(MsgAskDoc, ws.Store.DefaultDoc); err != nil {
			return false, err
		}
	}
	if !flags.Changed("code") {
		if req.Code, err = console.AskPartition(MsgAskCode, ""); err != nil {
			return false, err
		}
	}
	if !flags.Changed("description") {
		if req.Description, err = console.AskText(MsgAskDescription); err != nil {
			return false, err
		}
	}
	if req.Code == "" {
		return false, errors.New(errors.ErrInvalidInput, MsgErrNeedCode)
	}
	if yes {
		return true, nil
	}

	doc := req.Doc
	if doc == "" {
		doc = ws.Store.DefaultDoc
	}
	for _, side := range []struct{ label, raw string }{
		{MsgPreviewDoc, doc},
		{MsgPreviewCode, req.Code},
	} {
		canonical, text, err := ws.Extract(side.raw)
		if err != nil {
			return false, err
		}
		if err := console.Preview(side.label, canonical, text); err != nil {
			return false, err
		}
	}
	return console.Confirm(MsgConfirmAdd, true)
}

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <id-prefix>",
		Short:   MsgEditShort,
		Long:    MsgEditLong,
		Example: MsgEditExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			req := core.EditRequest{
				Doc:         optionalString(flags, "doc"),
				Code:        optionalString(flags, "code"),
				Description: optionalString(flags, "description"),
			}

			if req.IsEmpty() {
				if !a.interactive() {
					return errors.New(errors.ErrInvalidInput, MsgErrNeedEditFlags)
				}
				req, err = a.askEdit(cmd, ws, args[0])
				if errors.IsErrorCode(err, errors.ErrCancelled) {
					return r.RenderMessage(display.ErrorMessage(err))
				}
				if err != nil {
					return err
				}
			}

			rec, err := ws.Edit(args[0], req)
			if err != nil {
				return err
			}
			check, err := ws.VerifyRecord(rec.ID)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.CommandResult{Message: MsgLinkUpdated, Record: &rec, Check: &check})
		},
	}

	cmd.Flags().String("doc", "", MsgFlagDoc)
	cmd.Flags().String("code", "", MsgFlagCode)
	cmd.Flags().String("description", "", MsgFlagDescription)
	return cmd
}

// askEdit shows the link's current state and asks which fields to replace
func (a *app) askEdit(cmd *cobra.Command, ws *core.Workspace, prefix string) (core.EditRequest, error) {
	item, err := ws.VerifyRecord(prefix)
	if err != nil {
		return core.EditRequest{}, err
	}
	console, err := a.console(cmd)
	if err != nil {
		return core.EditRequest{}, err
	}
	if err := console.Renderer.RenderResult(item); err != nil {
		return core.EditRequest{}, err
	}
	return console.EditRequest(item)
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id-prefix>",
		Short:   MsgRemoveShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			rec, err := ws.Remove(args[0])
			if err != nil {
				return err
			}
			return r.RenderResult(&display.CommandResult{Message: MsgLinkRemoved, Record: &rec})
		},
	}
}

func newRemoveFailedCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove-failed",
		Short:   MsgRemoveFailedShort,
		Long:    MsgRemoveFailedLong,
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

			var (
				confirm  core.ConfirmFunc
				declined bool
			)
			if !yes {
				confirm = func(failed []verify.Result) (bool, error) {
					if !a.interactive() {
						return false, errors.New(errors.ErrInvalidInput, MsgErrNeedYes)
					}
					console, err := a.console(cmd)
					if err != nil {
						return false, err
					}
					ok, err := console.ConfirmRemoval(failed)
					declined = err == nil && !ok
					return ok, err
				}
			}

			removed, err := ws.RemoveFailed(confirm)
			if err != nil {
				return err
			}
			if declined {
				return r.RenderMessage(MsgRemovalDeclined)
			}
			return r.RenderResult(&display.Removal{Removed: removed, Remaining: ws.Store.Len()})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
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
			return r.RenderResult(&display.Listing{DefaultDoc: ws.Store.DefaultDoc, Records: ws.Store.Records})
		},
	}
}
