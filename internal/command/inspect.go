package command

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// inspectCommand builds the inspect subcommand.
func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "validate a template and describe its variable specifications",
		ArgsUsage: "<template>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump the parsed variable specifications verbatim",
			},
		},
		Action: inspectAction,
	}
}

func inspectAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("inspect requires a single template argument")
	}

	tmpl := uritemplate.New(cmd.Args().First())
	specs, err := tmpl.VarSpecs()
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.Bool("dump") {
		spew.Fdump(w, specs)
		return nil
	}

	fmt.Fprintf(w, "template: %s\n", tmpl.String())
	fmt.Fprintf(w, "variables: %d\n", len(specs))
	for _, spec := range specs {
		line := "  " + spec.Name
		if spec.Explode {
			line += " (explode)"
		}
		if spec.MaxLength > 0 {
			line += fmt.Sprintf(" (prefix %d)", spec.MaxLength)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
