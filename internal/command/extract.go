package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// extractCommand builds the extract subcommand.
func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "match a URI against a template and print its variables",
		ArgsUsage: "<template> <uri>",
		Action:    extractAction,
	}
}

func extractAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("extract requires template and uri arguments")
	}

	tmpl := uritemplate.New(cmd.Args().First())
	vars, err := tmpl.Extract(cmd.Args().Get(1))
	if err != nil {
		return err
	}

	printVars(cmd, vars)
	return nil
}

// printVars writes name=value lines, sorted by name for stable output.
func printVars(cmd *cli.Command, vars map[string]string) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(cmd.Root().Writer, "%s=%s\n", name, vars[name])
	}
}
