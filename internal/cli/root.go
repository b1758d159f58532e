package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/pathman/internal/version"
	"github.com/arthur-debert/pathman/pkg/cobrax/topics"
	"github.com/arthur-debert/pathman/pkg/config"
	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/arthur-debert/pathman/pkg/filesystem"
	"github.com/arthur-debert/pathman/pkg/logging"
	"github.com/arthur-debert/pathman/pkg/pathlist"
	"github.com/arthur-debert/pathman/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	groupPath = "path"
	groupMisc = "misc"

	// annotationConfig marks commands that need the loaded configuration
	annotationConfig = "pathman/config"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Options injects collaborators into the command tree
type Options struct {
	// Exists is the directory check used by filter. Defaults to the OS
	// filesystem.
	Exists pathlist.ExistsFunc
}

// app holds state shared by all subcommands once PersistentPreRunE ran
type app struct {
	opts Options

	verbosity  int
	configFile string
	separator  string

	cfg *config.Config
	sep pathlist.Separator
}

// NewRootCmd creates the root command with default collaborators
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Options{})
}

// NewRootCmdWith creates the root command using opts
func NewRootCmdWith(opts Options) *cobra.Command {
	initTemplateFormatting()

	if opts.Exists == nil {
		opts.Exists = filesystem.NewOS().IsDir
	}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "pathman",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New(errors.ErrUsage, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.separator, "separator", "", MsgFlagSeparator)

	rootCmd.AddGroup(&cobra.Group{ID: groupPath, Title: MsgGroupPath})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: MsgGroupMisc})
	rootCmd.SetHelpCommandGroupID(groupMisc)
	rootCmd.SetCompletionCommandGroupID(groupMisc)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newNormalizeDirCmd())
	rootCmd.AddCommand(a.newNormalizeCmd())
	rootCmd.AddCommand(a.newSplitCmd())
	rootCmd.AddCommand(a.newFilterCmd())
	rootCmd.AddCommand(a.newHasCmd())
	rootCmd.AddCommand(a.newPrependCmd())
	rootCmd.AddCommand(a.newAppendCmd())
	rootCmd.AddCommand(a.newJoinCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics makes `help <topic>` serve the embedded help topics
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		var tm *topics.TopicManager
		tm, err = topics.Load(sub, topics.Options{Renderer: topics.NewGlamourRenderer()})
		if err == nil {
			tm.Install(rootCmd, groupMisc)
			return
		}
	}
	log.Warn().Err(err).Msg("Help topics unavailable")
}

// setup configures logging and loads configuration for the running command
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLogger(cmd.ErrOrStderr(), a.verbosity, "")
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	if cmd.Annotations[annotationConfig] != "true" {
		return nil
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
	if err != nil {
		return err
	}
	if a.separator != "" {
		cfg.Separator = a.separator
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Logging.File != "" {
		logging.SetupLogger(cmd.ErrOrStderr(), a.verbosity, cfg.Logging.File)
	}

	sep, err := cfg.PathSeparator()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.sep = sep
	return nil
}

// Execute runs the command line and returns the process exit code. A false
// `has` exits 1 silently; any other failure prints a one-line error and a
// help hint to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	return ExecuteWith(NewRootCmd(), args, stdout, stderr)
}

// ExecuteWith is Execute on a prepared root command
func ExecuteWith(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if errors.IsErrorCode(err, errors.ErrNotMember) {
		log.Debug().Err(err).Msg("Membership test failed")
		return 1
	}

	_, _ = fmt.Fprintln(stderr, styles.Render("Error", MsgErrorPrefix+errors.UserMessage(err)))
	_, _ = fmt.Fprintln(stderr, styles.Render("Hint", MsgHintBefore)+
		styles.Render("Command", fmt.Sprintf(MsgHintCommand, rootCmd.Name()))+
		styles.Render("Hint", MsgHintAfter))
	return 1
}
