package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathman/internal/version"
	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "config",
		Short:       MsgConfigShort,
		GroupID:     groupMisc,
		Args:        exactArgs(),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if src := a.cfg.Source(); src != "" {
				if _, err := fmt.Fprintf(out, MsgConfigSource, src); err != nil {
					return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteOutput)
				}
			}
			if _, err := out.Write(data); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteOutput)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: groupMisc,
		Args:    exactArgs(),
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: groupMisc,
		Hidden:  true,
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, MsgErrManDir).WithDetail("dir", dir)
			}
			header := &doc.GenManHeader{
				Title:   "PATHMAN",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrManGen).WithDetail("dir", dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}
