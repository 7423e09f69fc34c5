// Command staffctl shortlists employees for projects from the command line.
package main

import (
	"os"

	"github.com/okian/staffer/internal/cli"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, buildTime)
	os.Exit(cli.Main())
}
