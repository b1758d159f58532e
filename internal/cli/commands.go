package cli

import (
	"fmt"

	"github.com/arthur-debert/pathman/pkg/config"
	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/arthur-debert/pathman/pkg/logging"
	"github.com/arthur-debert/pathman/pkg/pathlist"
	"github.com/spf13/cobra"
)

func configAnnotations() map[string]string {
	return map[string]string{annotationConfig: "true"}
}

// exactArgs requires one positional argument per name
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return errors.Newf(errors.ErrUsage, MsgErrMissingArg, names[len(args)])
		}
		if len(args) > len(names) {
			return errors.Newf(errors.ErrUsage, MsgErrTooManyArgs, cmd.Name(), len(names), len(args))
		}
		return nil
	}
}

// minArgs requires at least one positional argument per name
func minArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return errors.Newf(errors.ErrUsage, MsgErrMissingArg, names[len(args)])
		}
		return nil
	}
}

// writeResult writes a result followed by a newline
func writeResult(cmd *cobra.Command, result string) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), result); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteOutput)
	}
	return nil
}

func (a *app) newNormalizeDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize-dir <dir>",
		Short:   MsgNormalizeDirShort,
		GroupID: groupPath,
		Args:    exactArgs("<dir>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			// No trailing newline, the result is a single word.
			if _, err := fmt.Fprint(cmd.OutOrStdout(), pathlist.NormalizeDir(args[0])); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteOutput)
			}
			return nil
		},
	}
}

func (a *app) newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "normalize <path>",
		Short:       MsgNormalizeShort,
		GroupID:     groupPath,
		Args:        exactArgs("<path>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			out, err := a.sep.Normalize(args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd, out)
		},
	}
}

func (a *app) newSplitCmd() *cobra.Command {
	var lines, escaped bool

	cmd := &cobra.Command{
		Use:         "split <path>",
		Short:       MsgSplitShort,
		Long:        MsgSplitLong,
		GroupID:     groupPath,
		Args:        exactArgs("<path>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			if lines && escaped {
				return errors.New(errors.ErrUsage, MsgErrFlagsExclusive)
			}

			format := a.cfg.Split.Format
			switch {
			case lines:
				format = config.FormatLines
			case escaped:
				format = config.FormatEscaped
			}

			var out string
			var err error
			if format == config.FormatEscaped {
				out, err = a.sep.SplitEscaped(args[0])
			} else {
				out, err = a.sep.SplitLines(args[0])
			}
			if err != nil {
				return err
			}
			return writeResult(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&lines, "lines", false, MsgFlagLines)
	cmd.Flags().BoolVar(&escaped, "escaped", false, MsgFlagEscaped)
	return cmd
}

func (a *app) newFilterCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:         "filter <path>",
		Short:       MsgFilterShort,
		Long:        MsgFilterLong,
		GroupID:     groupPath,
		Args:        exactArgs("<path>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.filter")
			done := logging.LogOperationStart(logger, "filter")
			defer done()

			opts := pathlist.FilterOptions{Workers: a.cfg.Filter.Workers}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return errors.Newf(errors.ErrUsage, MsgErrBadWorkers, workers)
				}
				opts.Workers = workers
			}

			out, err := a.sep.FilterWith(args[0], a.opts.Exists, opts)
			if err != nil {
				return err
			}
			return writeResult(cmd, out)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 1, MsgFlagWorkers)
	return cmd
}

func (a *app) newHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "has <path> <dir>",
		Short:       MsgHasShort,
		Long:        MsgHasLong,
		GroupID:     groupPath,
		Args:        exactArgs("<path>", "<dir>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			ok, err := a.sep.Has(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return errors.Newf(errors.ErrNotMember, MsgErrNotMember, args[1])
			}
			return nil
		},
	}
}

func (a *app) newPrependCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "prepend <path> <dir>...",
		Short:       MsgPrependShort,
		Long:        MsgPrependLong,
		GroupID:     groupPath,
		Args:        minArgs("<path>", "<dir>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			out, err := a.sep.Prepend(args[0], args[1:]...)
			if err != nil {
				return err
			}
			return writeResult(cmd, out)
		},
	}
}

func (a *app) newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "append <path> <dir>...",
		Short:       MsgAppendShort,
		Long:        MsgAppendLong,
		GroupID:     groupPath,
		Args:        minArgs("<path>", "<dir>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			out, err := a.sep.Append(args[0], args[1:]...)
			if err != nil {
				return err
			}
			return writeResult(cmd, out)
		},
	}
}

func (a *app) newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "join <dir>...",
		Short:       MsgJoinShort,
		Long:        MsgJoinLong,
		GroupID:     groupPath,
		Args:        minArgs("<dir>"),
		Annotations: configAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			out, err := a.sep.Join(args...)
			if err != nil {
				return err
			}
			return writeResult(cmd, out)
		},
	}
}
