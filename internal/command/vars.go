package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// varsCommand builds the vars subcommand.
func varsCommand() *cli.Command {
	return &cli.Command{
		Name:      "vars",
		Usage:     "list the variables a template references, in order",
		ArgsUsage: "<template>",
		Action:    varsAction,
	}
}

func varsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("vars requires a single template argument")
	}

	names, err := uritemplate.New(cmd.Args().First()).Variables()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.Root().Writer, name)
	}
	return nil
}
