// Package command implements the uritpl command line interface.
package command

import (
	"github.com/urfave/cli/v3"
)

// Root builds the uritpl command tree.
// A fresh tree is built on every call so tests can run commands
// independently.
func Root() *cli.Command {
	return &cli.Command{
		Name:  "uritpl",
		Usage: "expand and match RFC 6570 URI templates",
		Commands: []*cli.Command{
			expandCommand(),
			extractCommand(),
			varsCommand(),
			inspectCommand(),
			catalogCommand(),
		},
	}
}
