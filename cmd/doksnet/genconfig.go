package doksnet

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/doksnet/pkg/config"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/filesystem"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var effective, write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if effective {
				var err error
				if content, err = config.Marshal(a.cfg); err != nil {
					return err
				}
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			dir, err := a.workDir()
			if err != nil {
				return errors.Wrap(err, errors.ErrIO, MsgErrWorkingDir)
			}
			path := filepath.Join(dir, config.ProjectFileName)
			if err := filesystem.WriteFileAtomic(a.fs, path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).WithDetail("path", path)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
