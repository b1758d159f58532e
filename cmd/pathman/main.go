package main

import (
	"os"

	"github.com/arthur-debert/pathman/internal/cli"
	"github.com/arthur-debert/pathman/pkg/ui/styles"
)

func main() {
	styles.SetupColor(os.Stderr.Fd())
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
