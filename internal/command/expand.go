package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// expandCommand builds the expand subcommand.
func expandCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "expand a template with variable values",
		ArgsUsage: "<template>",
		Flags: []cli.Flag{
			varFlag(),
			varsFileFlag(),
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail when the template references undefined variables",
			},
		},
		Action: expandAction,
	}
}

func expandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expand requires a single template argument")
	}

	values, err := collectValues(cmd)
	if err != nil {
		return err
	}

	tmpl := uritemplate.New(cmd.Args().First())

	var uri string
	if cmd.Bool("strict") {
		uri, err = tmpl.ExpandStrict(values)
	} else {
		uri, err = tmpl.Expand(values)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, uri)
	return nil
}
