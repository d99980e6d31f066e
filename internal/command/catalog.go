package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/catalog"
)

// catalogCommand builds the catalog subcommand tree.
// Every leaf takes --db so each invocation opens its own store.
func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "manage a persistent catalog of named templates",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "register a template under a name",
				ArgsUsage: "<name> <template>",
				Flags:     []cli.Flag{dbFlag()},
				Action:    catalogAddAction,
			},
			{
				Name:   "list",
				Usage:  "list registered templates",
				Flags:  []cli.Flag{dbFlag()},
				Action: catalogListAction,
			},
			{
				Name:      "rm",
				Usage:     "remove a template by name",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{dbFlag()},
				Action:    catalogRemoveAction,
			},
			{
				Name:      "expand",
				Usage:     "expand a registered template with variable values",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{dbFlag(), varFlag(), varsFileFlag()},
				Action:    catalogExpandAction,
			},
			{
				Name:      "match",
				Usage:     "find the registered template that produced a URI",
				ArgsUsage: "<uri>",
				Flags:     []cli.Flag{dbFlag()},
				Action:    catalogMatchAction,
			},
		},
	}
}

// dbFlag builds the shared --db flag.
func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "db",
		Value: "uritpl.db",
		Usage: "path to the catalog database",
	}
}

// openCatalog opens the SQLite-backed catalog named by --db.
// The caller must close the returned store.
func openCatalog(cmd *cli.Command) (*catalog.Catalog, *catalog.SQLiteStore, error) {
	store, err := catalog.NewSQLiteStore(cmd.String("db"))
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog database: %w", err)
	}
	return catalog.New(store), store, nil
}

func catalogAddAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("catalog add requires name and template arguments")
	}

	cat, store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = cat.Add(cmd.Args().First(), cmd.Args().Get(1))
	return err
}

func catalogListAction(ctx context.Context, cmd *cli.Command) error {
	cat, store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Fprintf(cmd.Root().Writer, "%s\t%s\n", entry.Name, entry.Template)
	}
	return nil
}

func catalogRemoveAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("catalog rm requires a name argument")
	}

	cat, store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	return cat.Remove(cmd.Args().First())
}

func catalogExpandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("catalog expand requires a name argument")
	}

	values, err := collectValues(cmd)
	if err != nil {
		return err
	}

	cat, store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	uri, err := cat.Expand(cmd.Args().First(), values)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, uri)
	return nil
}

func catalogMatchAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("catalog match requires a uri argument")
	}

	cat, store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := cat.Match(cmd.Args().First())
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	fmt.Fprintln(w, m.Entry.Name)

	names := make([]string, 0, len(m.Variables))
	for name := range m.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s=%s\n", name, m.Variables[name])
	}
	return nil
}
