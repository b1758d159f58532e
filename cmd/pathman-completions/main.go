// Command pathman-completions writes the completion scripts shipped in
// release archives: pathman.bash, _pathman, pathman.fish and pathman.ps1.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pathman/internal/cli"
	"github.com/spf13/cobra"
)

type script struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}

var scripts = []script{
	{"pathman.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	{"_pathman", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	{"pathman.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	{"pathman.ps1", func(c *cobra.Command, w io.Writer) error { return c.GenPowerShellCompletionWithDesc(w) }},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	rootCmd := cli.NewRootCmd()
	for _, s := range scripts {
		f, err := os.Create(filepath.Join(dir, s.file))
		if err != nil {
			return err
		}
		err = s.gen(rootCmd, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", s.file, err)
		}
	}
	return nil
}
