package command

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// varFlag builds the repeatable --var flag.
func varFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "var",
		Aliases: []string{"v"},
		Usage:   "variable assignment in name=value form, repeatable",
	}
}

// varsFileFlag builds the --vars-file flag.
func varsFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "vars-file",
		Aliases: []string{"f"},
		Usage:   "YAML or JSON file with variable values",
	}
}

// loadVarsFile loads variable values from a file, auto-detecting format
// by extension. Supported extensions: .yaml, .yml, .json
func loadVarsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vars file: %w", err)
	}

	var m map[string]any
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported vars file extension: %s", ext)
	}
	return m, nil
}

// collectValues assembles template values from the --vars-file and --var
// flags. Command line assignments override file values.
func collectValues(cmd *cli.Command) (uritemplate.Values, error) {
	raw := map[string]any{}

	if path := cmd.String("vars-file"); path != "" {
		loaded, err := loadVarsFile(path)
		if err != nil {
			return nil, err
		}
		for name, value := range loaded {
			raw[name] = value
		}
	}

	for _, assignment := range cmd.StringSlice("var") {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable assignment %q: want name=value", assignment)
		}
		raw[name] = value
	}

	return uritemplate.ValuesOf(raw)
}
