package main

import (
	"context"
	"fmt"
	"os"

	"github.com/randalmurphal/uritemplate/internal/command"
)

func main() {
	if err := command.Root().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
