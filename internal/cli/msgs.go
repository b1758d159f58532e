package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Normalize and edit search-path strings"
	MsgNormalizeDirShort = "Normalize a single directory"
	MsgNormalizeShort    = "Normalize a path string"
	MsgSplitShort        = "Print the directories of a path string"
	MsgFilterShort       = "Drop missing and duplicate directories"
	MsgFilterLong        = "Filter keeps the directories of <path> that exist, dropping repeats. The first occurrence of each directory wins and the order is kept."
	MsgHasShort          = "Exit 0 if a path string contains a directory"
	MsgHasLong           = "Has prints nothing. It exits with status 0 when <dir> is one of the directories of <path> and 1 otherwise. Both are normalized before comparing."
	MsgPrependShort      = "Add directories to the front of a path string"
	MsgAppendShort       = "Add directories to the end of a path string"
	MsgAppendLong        = "Append adds each <dir> to the end of <path>, in the order given, unless it is already there."
	MsgJoinShort         = "Build a path string from directories"
	MsgJoinLong          = "Join normalizes each <dir> and joins them with the separator. Nothing is deduplicated or checked for existence."
	MsgVersionShort      = "Print version information"
	MsgConfigShort       = "Print the effective configuration"
	MsgManShort          = "Generate man pages"

	// Group titles
	MsgGroupPath = "PATH COMMANDS:"
	MsgGroupMisc = "MISC:"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/pathman/config.toml)"
	MsgFlagSeparator = "Path list separator (default: the platform separator)"
	MsgFlagLines     = "Print one directory per line"
	MsgFlagEscaped   = "Print directories on one line with whitespace escaped"
	MsgFlagWorkers   = "Number of concurrent existence checks"
	MsgFlagManDir    = "Directory to write man pages to"

	// Output
	MsgVersionFormat = "pathman version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigSource  = "# loaded from %s\n"
	MsgHintBefore    = "Run '"
	MsgHintCommand   = "%s --help"
	MsgHintAfter     = "' for usage."
	MsgErrorPrefix   = "Error: "

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrMissingArg     = "missing %s argument"
	MsgErrTooManyArgs    = "%s takes %d argument(s), got %d"
	MsgErrFlagsExclusive = "--lines and --escaped cannot be used together"
	MsgErrBadWorkers     = "--workers must be >= 1, got %d"
	MsgErrNotMember      = "%q is not in path"
	MsgErrWriteOutput    = "failed to write output"
	MsgErrManDir         = "failed to create man page directory"
	MsgErrManGen         = "failed to generate man pages"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/split-long.txt
	msgSplitLongRaw string
	MsgSplitLong    = strings.TrimSpace(msgSplitLongRaw)

	//go:embed msgs/prepend-long.txt
	msgPrependLongRaw string
	MsgPrependLong    = strings.TrimSpace(msgPrependLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
