// Command pathman-manpage prints the pathman(1) man page to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathman/internal/cli"
	"github.com/arthur-debert/pathman/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PATHMAN",
		Section: "1",
		Source:  "pathman " + version.Version,
		Manual:  "pathman manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
